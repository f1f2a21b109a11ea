package db

import (
	"context"
	"fmt"
)

// Seed inserts demo data into an empty catalog. It is a no-op once any product exists.
// Seeded inventory satisfies remaining = initial + sum of recorded changes.
func Seed(ctx context.Context, db DB) (seeded bool, err error) {
	err = db.WithTx(ctx, func(db DB) error {
		var exists bool
		if err := db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products)`).Scan(&exists); err != nil {
			return fmt.Errorf("check products: %w", err)
		}
		if exists {
			return nil
		}

		if _, err := db.Exec(ctx, seedSQL); err != nil {
			return fmt.Errorf("insert seed data: %w", err)
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}

const seedSQL = `
WITH c1 AS (
    INSERT INTO categories (name) VALUES ('Category 1') RETURNING id
), c2 AS (
    INSERT INTO categories (name) VALUES ('Category 2') RETURNING id
), p1 AS (
    INSERT INTO products (name, sku, description, price, category_id)
    SELECT 'Product 1', 'SKU1', 'Description 1', 10.99, id FROM c1
    RETURNING id
), p2 AS (
    INSERT INTO products (name, sku, description, price, category_id)
    SELECT 'Product 2', 'SKU2', 'Description 2', 15.99, id FROM c2
    RETURNING id
), i1 AS (
    INSERT INTO inventory (product_id, initial_quantity, remaining_quantity, threshold)
    SELECT id, 100, 110, 10 FROM p1
), i2 AS (
    INSERT INTO inventory (product_id, initial_quantity, remaining_quantity, threshold)
    SELECT id, 200, 205, 20 FROM p2
), h1 AS (
    INSERT INTO inventory_change_history (product_id, quantity_change, new_quantity)
    SELECT id, 10, 110 FROM p1
    RETURNING id
), h2 AS (
    INSERT INTO inventory_change_history (product_id, quantity_change, new_quantity)
    SELECT id, 5, 205 FROM p2
    RETURNING id
), f1 AS (
    INSERT INTO inventory_feed_outbox (history_id, threshold)
    SELECT id, 10 FROM h1
), f2 AS (
    INSERT INTO inventory_feed_outbox (history_id, threshold)
    SELECT id, 20 FROM h2
), cu1 AS (
    INSERT INTO customers (name, email, phone, address)
    VALUES ('Customer 1', 'customer1@example.com', '1234567890', 'Address 1')
    RETURNING id
), cu2 AS (
    INSERT INTO customers (name, email, phone, address)
    VALUES ('Customer 2', 'customer2@example.com', '9876543210', 'Address 2')
    RETURNING id
), o1 AS (
    INSERT INTO orders (customer_id, total_amount, status)
    SELECT id, 21.98, 'confirmed' FROM cu1
    RETURNING id
), o2 AS (
    INSERT INTO orders (customer_id, total_amount, status)
    SELECT id, 15.99, 'delivered' FROM cu2
    RETURNING id
), oi1 AS (
    INSERT INTO order_items (order_id, product_id, quantity)
    SELECT o1.id, p1.id, 2 FROM o1, p1
)
INSERT INTO order_items (order_id, product_id, quantity)
SELECT o2.id, p2.id, 1 FROM o2, p2;
`

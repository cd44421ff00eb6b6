package db

import (
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"gorm.io/gorm"
)

// Business rules that live on the database side: name masking, delivery
// estimation, cart totals, order creation, stock updates, order status
// transitions and review eligibility. Application code calls these through
// repository.ProcGateway and treats them as black-box contracts.
var routineStatements = []string{
	// mask_name hides all but the first letter of each word ("Y**** K*****")
	`CREATE OR REPLACE FUNCTION mask_name(p_name TEXT) RETURNS TEXT AS $$
DECLARE
	word TEXT;
	result TEXT := '';
BEGIN
	IF p_name IS NULL OR btrim(p_name) = '' THEN
		RETURN '';
	END IF;
	FOREACH word IN ARRAY regexp_split_to_array(btrim(p_name), '\s+') LOOP
		IF length(word) > 1 THEN
			word := left(word, 1) || repeat('*', length(word) - 1);
		END IF;
		IF result = '' THEN
			result := word;
		ELSE
			result := result || ' ' || word;
		END IF;
	END LOOP;
	RETURN result;
END;
$$ LANGUAGE plpgsql IMMUTABLE`,

	`CREATE OR REPLACE FUNCTION estimated_delivery(p_order_date TIMESTAMPTZ) RETURNS TIMESTAMPTZ AS $$
BEGIN
	RETURN p_order_date + INTERVAL '3 days';
END;
$$ LANGUAGE plpgsql IMMUTABLE`,

	// calculate_cart_total sums the persisted cart of the given user at
	// current catalog prices
	`CREATE OR REPLACE FUNCTION calculate_cart_total(p_user_id BIGINT) RETURNS NUMERIC AS $$
DECLARE
	v_total NUMERIC := 0;
BEGIN
	SELECT COALESCE(SUM(b.price * ci.quantity), 0)
	INTO v_total
	FROM carts c
	JOIN cart_items ci ON ci.cart_id = c.id
	JOIN books b ON b.id = ci.book_id
	WHERE c.user_id = p_user_id;
	RETURN v_total;
END;
$$ LANGUAGE plpgsql`,

	// create_order materializes an order from the user's persisted cart:
	// moves line items into order history, decrements stock and clears the
	// cart rows, returning the new order id
	`CREATE OR REPLACE FUNCTION create_order(p_user_id BIGINT, p_address TEXT, p_total NUMERIC) RETURNS BIGINT AS $$
DECLARE
	v_cart_id BIGINT;
	v_order_id BIGINT;
BEGIN
	SELECT id INTO v_cart_id FROM carts WHERE user_id = p_user_id;
	IF v_cart_id IS NULL THEN
		RAISE EXCEPTION 'no cart for user %', p_user_id;
	END IF;

	INSERT INTO orders (customer_id, status, order_date, total_amount, shipping_address)
	VALUES (p_user_id, 'pending', now(), p_total, p_address)
	RETURNING id INTO v_order_id;

	INSERT INTO order_items (order_id, book_id, quantity, unit_price)
	SELECT v_order_id, ci.book_id, ci.quantity, b.price
	FROM cart_items ci
	JOIN books b ON b.id = ci.book_id
	WHERE ci.cart_id = v_cart_id;

	UPDATE books b
	SET stock = b.stock - ci.quantity
	FROM cart_items ci
	WHERE ci.cart_id = v_cart_id AND ci.book_id = b.id;

	DELETE FROM cart_items WHERE cart_id = v_cart_id;

	RETURN v_order_id;
END;
$$ LANGUAGE plpgsql`,

	// add_review inserts a review only when the referenced order belongs to
	// the user, contains the book and has been delivered. Returns 1 on
	// success, 0 when ineligible.
	`CREATE OR REPLACE FUNCTION add_review(p_order_id BIGINT, p_user_id BIGINT, p_book_id BIGINT, p_star INT, p_comment TEXT) RETURNS INT AS $$
DECLARE
	v_eligible BOOLEAN;
BEGIN
	SELECT EXISTS (
		SELECT 1
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		WHERE o.id = p_order_id
		  AND o.customer_id = p_user_id
		  AND oi.book_id = p_book_id
		  AND o.status = 'delivered'
	) INTO v_eligible;

	IF NOT v_eligible THEN
		RETURN 0;
	END IF;

	INSERT INTO reviews (user_id, book_id, star, comment, created_at)
	VALUES (p_user_id, p_book_id, p_star, p_comment, now());

	UPDATE books
	SET average_rating = (SELECT AVG(star) FROM reviews WHERE book_id = p_book_id)
	WHERE id = p_book_id;

	RETURN 1;
END;
$$ LANGUAGE plpgsql`,

	`CREATE OR REPLACE FUNCTION update_stock(p_book_id BIGINT, p_stock INT) RETURNS VOID AS $$
BEGIN
	UPDATE books SET stock = p_stock, updated_at = now() WHERE id = p_book_id;
END;
$$ LANGUAGE plpgsql`,

	// update_order_status transitions an order and records the change in
	// the audit table
	`CREATE OR REPLACE FUNCTION update_order_status(p_order_id BIGINT, p_status TEXT) RETURNS VOID AS $$
DECLARE
	v_old TEXT;
BEGIN
	SELECT status INTO v_old FROM orders WHERE id = p_order_id;
	IF v_old IS NULL THEN
		RAISE EXCEPTION 'order % not found', p_order_id;
	END IF;

	UPDATE orders SET status = p_status WHERE id = p_order_id;

	INSERT INTO order_status_history (order_id, old_status, new_status, change_date)
	VALUES (p_order_id, v_old, p_status, now());
END;
$$ LANGUAGE plpgsql`,

	`CREATE OR REPLACE VIEW order_details AS
SELECT
	o.id AS order_id,
	o.order_date,
	o.customer_id,
	u.full_name AS customer_name,
	o.status,
	oi.book_id,
	b.name AS book_name,
	oi.quantity,
	oi.unit_price,
	oi.unit_price * oi.quantity AS total_amount
FROM orders o
JOIN order_items oi ON oi.order_id = o.id
JOIN books b ON b.id = oi.book_id
JOIN users u ON u.id = o.customer_id`,
}

// InstallRoutines creates the functions and views on PostgreSQL. Other
// dialects (the SQLite test database) skip this; their deployments use the
// portable ORM gateway instead.
func InstallRoutines(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		logger.Info("Skipping database routine installation", map[string]interface{}{
			"dialect": db.Dialector.Name(),
		})
		return nil
	}

	for _, stmt := range routineStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	logger.Info("Database routines installed successfully", map[string]interface{}{
		"routines_count": len(routineStatements),
	})
	return nil
}

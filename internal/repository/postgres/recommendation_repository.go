package postgres

import (
	"context"
	"fmt"

	"souqStore/domain"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{
		DB: db,
	}
}

// CoOccurrences ranks products that share orders with the target product.
// Anchor orders are the distinct orders containing the target; support for a
// candidate is the fraction of anchor orders that also contain it. avg_price
// averages the prices recorded on order items, not the catalog price.
//
// A target with no orders produces an empty product_orders CTE, so the
// support division is never evaluated and the result is simply empty.
func (r *RecommendationRepository) CoOccurrences(ctx context.Context, productID uint64, minSupport float64) ([]domain.ProductSuggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var suggestions []domain.ProductSuggestion
	err := r.DB.WithContext(ctx).Raw(`
		WITH product_orders AS (
		    SELECT DISTINCT order_id
		    FROM order_items
		    WHERE product_id = ?
		),
		co_occurrences AS (
		    SELECT
		        oi.product_id,
		        COUNT(DISTINCT oi.order_id) AS co_occurrence_count,
		        (COUNT(DISTINCT oi.order_id) * 1.0) / (SELECT COUNT(*) FROM product_orders) AS support
		    FROM product_orders po
		    JOIN order_items oi ON po.order_id = oi.order_id
		    WHERE oi.product_id != ?
		    GROUP BY oi.product_id
		)
		SELECT
		    p.id,
		    p.name,
		    p.price,
		    p.description,
		    p.category,
		    p.image_url,
		    co.support,
		    AVG(oi.price) AS avg_price
		FROM co_occurrences co
		JOIN products p ON co.product_id = p.id
		JOIN order_items oi ON oi.product_id = p.id
		WHERE co.support >= ?
		GROUP BY p.id, co.support
		ORDER BY co.support DESC
		LIMIT 5`,
		productID, productID, minSupport,
	).Scan(&suggestions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query co-occurrences: %w", err)
	}

	return suggestions, nil
}

// TopAssociations reads the precomputed pair table, maintained by an
// external batch job, joined to product names.
func (r *RecommendationRepository) TopAssociations(ctx context.Context) ([]domain.AssociationPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var pairs []domain.AssociationPair
	err := r.DB.WithContext(ctx).Raw(`
		SELECT
		    p1.name AS product1,
		    p2.name AS product2,
		    pa.frequency
		FROM product_associations pa
		JOIN products p1 ON pa.product1 = p1.id
		JOIN products p2 ON pa.product2 = p2.id
		ORDER BY pa.frequency DESC
		LIMIT 10`,
	).Scan(&pairs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query associations: %w", err)
	}

	return pairs, nil
}

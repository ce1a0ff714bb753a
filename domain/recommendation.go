package domain

// CREATE TABLE public.product_associations (
//     product1  BIGINT NOT NULL REFERENCES products(id),
//     product2  BIGINT NOT NULL REFERENCES products(id),
//     frequency BIGINT NOT NULL
// );
//
// Rows are materialized by an external batch job. This service only reads
// them.

type ProductAssociation struct {
	Product1  uint64 `gorm:"column:product1"`
	Product2  uint64 `gorm:"column:product2"`
	Frequency int64  `gorm:"column:frequency"`
}

func (ProductAssociation) TableName() string {
	return "product_associations"
}

// AssociationPair is the association row joined to product names, as served
// by GET /api/associations.
type AssociationPair struct {
	Product1  string `gorm:"column:product1" json:"product1"`
	Product2  string `gorm:"column:product2" json:"product2"`
	Frequency int64  `gorm:"column:frequency" json:"frequency"`
}

// ProductSuggestion is one co-occurrence candidate for a target product.
// Support is the fraction of the target's orders that also contain this
// product. AvgPrice is the mean of the historical sale prices recorded on
// order items, not the current catalog price.
type ProductSuggestion struct {
	ID          uint64  `gorm:"column:id" json:"id"`
	Name        string  `gorm:"column:name" json:"name"`
	Price       float64 `gorm:"column:price" json:"price"`
	Description string  `gorm:"column:description" json:"description"`
	Category    string  `gorm:"column:category" json:"category"`
	ImageURL    string  `gorm:"column:image_url" json:"image_url"`
	Support     float64 `gorm:"column:support" json:"support"`
	AvgPrice    float64 `gorm:"column:avg_price" json:"avg_price"`
}

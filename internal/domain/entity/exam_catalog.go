package entity

// ExamCatalogItem is one priced exam offered by the laboratory.
// The catalog is static reference data in this version; it is not backed
// by a mutable table, but callers depend on its shape.
type ExamCatalogItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	CategoryID    string `json:"category_id"`
	CategoryTitle string `json:"category_title"`
	PriceCents    int64  `json:"price_cents"`
}

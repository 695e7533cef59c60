package repository

import (
	"context"

	"clinical-lab-records/internal/domain/entity"
)

// The exam catalog is static seed data in this version: there is no
// persistence or admin path to change prices or categories. Callers still
// go through the facade so a future table-backed catalog is a drop-in.
var examCatalogSeed = []entity.ExamCatalogItem{
	{ID: "hemograma-completo", Name: "Hemograma Completo", CategoryID: "hematologia", CategoryTitle: "Hematologia", PriceCents: 2500},
	{ID: "glicose", Name: "Glicose", CategoryID: "bioquimica", CategoryTitle: "Bioquímica", PriceCents: 1200},
	{ID: "colesterol-total", Name: "Colesterol Total", CategoryID: "bioquimica", CategoryTitle: "Bioquímica", PriceCents: 1500},
	{ID: "hdl-colesterol", Name: "HDL Colesterol", CategoryID: "bioquimica", CategoryTitle: "Bioquímica", PriceCents: 1600},
	{ID: "ldl-colesterol", Name: "LDL Colesterol", CategoryID: "bioquimica", CategoryTitle: "Bioquímica", PriceCents: 1600},
	{ID: "triglicerideos", Name: "Triglicerídeos", CategoryID: "bioquimica", CategoryTitle: "Bioquímica", PriceCents: 1500},
	{ID: "ureia", Name: "Ureia", CategoryID: "bioquimica", CategoryTitle: "Bioquímica", PriceCents: 1100},
	{ID: "creatinina", Name: "Creatinina", CategoryID: "bioquimica", CategoryTitle: "Bioquímica", PriceCents: 1100},
	{ID: "tsh", Name: "TSH", CategoryID: "hormonios", CategoryTitle: "Hormônios", PriceCents: 3200},
	{ID: "t4-livre", Name: "T4 Livre", CategoryID: "hormonios", CategoryTitle: "Hormônios", PriceCents: 3000},
	{ID: "beta-hcg", Name: "Beta HCG", CategoryID: "hormonios", CategoryTitle: "Hormônios", PriceCents: 3500},
	{ID: "eas", Name: "EAS (Urina Tipo I)", CategoryID: "uroanalise", CategoryTitle: "Uroanálise", PriceCents: 1400},
	{ID: "parasitologico", Name: "Parasitológico de Fezes", CategoryID: "parasitologia", CategoryTitle: "Parasitologia", PriceCents: 1300},
}

func (r *patientRepository) ListExamCatalog(ctx context.Context) ([]entity.ExamCatalogItem, error) {
	catalog := make([]entity.ExamCatalogItem, len(examCatalogSeed))
	copy(catalog, examCatalogSeed)
	return catalog, nil
}

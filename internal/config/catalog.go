package config

import "github.com/catatumbo/nube-catatumbo/internal/model"

// DefaultCategories returns the home screen categories shipped with the app
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "educacion", Title: "Educación", Icon: "📚"},
		{ID: "agricultura", Title: "Agricultura", Icon: "🌱"},
		{ID: "salud", Title: "Salud", Icon: "🩺"},
		{ID: "cultura", Title: "Cultura", Icon: "🎶"},
	}
}

// DefaultCatalog returns the resources shipped with the app
func DefaultCatalog() []model.Resource {
	return []model.Resource{
		{ID: "matematicas-basicas", Title: "Matemáticas básicas", Category: "educacion", Kind: model.KindVideo, Size: "45 MB", Duration: "12 min"},
		{ID: "lectura-inicial", Title: "Lectura inicial", Category: "educacion", Kind: model.KindDocument, Size: "3 MB"},
		{ID: "cultivo-cacao", Title: "Cultivo de cacao", Category: "agricultura", Kind: model.KindVideo, Size: "60 MB", Duration: "18 min"},
		{ID: "abonos-organicos", Title: "Abonos orgánicos", Category: "agricultura", Kind: model.KindAudio, Size: "8 MB", Duration: "9 min"},
		{ID: "primeros-auxilios", Title: "Primeros auxilios", Category: "salud", Kind: model.KindVideo, Size: "38 MB", Duration: "10 min"},
		{ID: "agua-segura", Title: "Agua segura en casa", Category: "salud", Kind: model.KindDocument, Size: "2 MB"},
		{ID: "historia-catatumbo", Title: "Historia del Catatumbo", Category: "cultura", Kind: model.KindAudio, Size: "15 MB", Duration: "22 min"},
		{ID: "relampago-catatumbo", Title: "El relámpago del Catatumbo", Category: "cultura", Kind: model.KindVideo, Size: "52 MB", Duration: "14 min"},
	}
}

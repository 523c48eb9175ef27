package domain

// EstablishmentType - тип медицинского учреждения (закрытое перечисление)
type EstablishmentType string

const (
	EstablishmentHospital        EstablishmentType = "hospital"
	EstablishmentClinic          EstablishmentType = "clinic"
	EstablishmentPharmacy        EstablishmentType = "pharmacy"
	EstablishmentLaboratory      EstablishmentType = "laboratory"
	EstablishmentDentist         EstablishmentType = "dentist"
	EstablishmentDoctor          EstablishmentType = "doctor"
	EstablishmentPhysiotherapist EstablishmentType = "physiotherapist"
)

// TypeInfo - отображаемые метаданные типа учреждения
type TypeInfo struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// VocabularyEntry - соответствие значения тега типу учреждения
type VocabularyEntry struct {
	Value string
	Type  EstablishmentType
}

// Vocabulary - словарь тегов OSM (например amenity=* или healthcare=*)
type Vocabulary struct {
	Key     string
	Entries []VocabularyEntry
}

// Lookup возвращает тип для значения тега, если значение известно словарю
func (v Vocabulary) Lookup(value string) (EstablishmentType, bool) {
	for _, e := range v.Entries {
		if e.Value == value {
			return e.Type, true
		}
	}
	return "", false
}

// Taxonomy - таблица типов и упорядоченный список словарей.
// Порядок Vocabularies задаёт приоритет: первый словарь, распознавший тег, побеждает.
type Taxonomy struct {
	Types        map[EstablishmentType]TypeInfo
	Order        []EstablishmentType
	Vocabularies []Vocabulary
	Fallback     EstablishmentType
}

// DefaultTaxonomy возвращает таксономию MediPlus: amenity важнее healthcare, fallback - doctor
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		Types: map[EstablishmentType]TypeInfo{
			EstablishmentHospital:        {Label: "Hôpital", Icon: "hospital", Color: "#e53e3e"},
			EstablishmentClinic:          {Label: "Clinique", Icon: "building", Color: "#3182ce"},
			EstablishmentPharmacy:        {Label: "Pharmacie", Icon: "pill", Color: "#38a169"},
			EstablishmentLaboratory:      {Label: "Laboratoire", Icon: "flask", Color: "#805ad5"},
			EstablishmentDentist:         {Label: "Dentiste", Icon: "tooth", Color: "#d69e2e"},
			EstablishmentDoctor:          {Label: "Médecin", Icon: "stethoscope", Color: "#319795"},
			EstablishmentPhysiotherapist: {Label: "Kinésithérapeute", Icon: "activity", Color: "#dd6b20"},
		},
		Order: []EstablishmentType{
			EstablishmentHospital,
			EstablishmentClinic,
			EstablishmentPharmacy,
			EstablishmentLaboratory,
			EstablishmentDentist,
			EstablishmentDoctor,
			EstablishmentPhysiotherapist,
		},
		Vocabularies: []Vocabulary{
			{
				Key: "amenity",
				Entries: []VocabularyEntry{
					{Value: "hospital", Type: EstablishmentHospital},
					{Value: "clinic", Type: EstablishmentClinic},
					{Value: "pharmacy", Type: EstablishmentPharmacy},
					{Value: "dentist", Type: EstablishmentDentist},
					{Value: "doctors", Type: EstablishmentDoctor},
				},
			},
			{
				Key: "healthcare",
				Entries: []VocabularyEntry{
					{Value: "hospital", Type: EstablishmentHospital},
					{Value: "clinic", Type: EstablishmentClinic},
					{Value: "pharmacy", Type: EstablishmentPharmacy},
					{Value: "dentist", Type: EstablishmentDentist},
					{Value: "laboratory", Type: EstablishmentLaboratory},
					{Value: "physiotherapist", Type: EstablishmentPhysiotherapist},
					{Value: "doctor", Type: EstablishmentDoctor},
				},
			},
		},
		Fallback: EstablishmentDoctor,
	}
}

// Classify определяет тип учреждения по набору тегов
func (t *Taxonomy) Classify(tags map[string]string) EstablishmentType {
	for _, vocab := range t.Vocabularies {
		value, ok := tags[vocab.Key]
		if !ok {
			continue
		}
		if et, ok := vocab.Lookup(value); ok {
			return et
		}
	}
	return t.Fallback
}

// Info возвращает метаданные типа; для неизвестного типа - метаданные fallback
func (t *Taxonomy) Info(et EstablishmentType) TypeInfo {
	if info, ok := t.Types[et]; ok {
		return info
	}
	return t.Types[t.Fallback]
}

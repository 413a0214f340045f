package medicine

// Profile es una entrada del catálogo de medicamentos comunes.
// Medicamentos fuera del catálogo no tienen chequeo de seguridad.
type Profile struct {
	Name            string  `json:"name"`
	DefaultDose     float64 `json:"default_dose"`
	Unit            string  `json:"unit"`
	Frequency       string  `json:"frequency"`
	MaxDailyDoses   int     `json:"max_daily_doses"`
	MinHoursBetween float64 `json:"min_hours_between"`
}

var catalog = []Profile{
	{Name: "Acetaminophen", DefaultDose: 2.5, Unit: "ml", Frequency: "every 4-6 hours", MaxDailyDoses: 5, MinHoursBetween: 4},
	{Name: "Ibuprofen", DefaultDose: 2.5, Unit: "ml", Frequency: "every 6-8 hours", MaxDailyDoses: 4, MinHoursBetween: 6},
	{Name: "Vitamin D", DefaultDose: 400, Unit: "IU", Frequency: "once daily", MaxDailyDoses: 1, MinHoursBetween: 24},
	{Name: "Iron Supplement", DefaultDose: 1, Unit: "ml", Frequency: "once daily", MaxDailyDoses: 1, MinHoursBetween: 24},
	{Name: "Probiotic", DefaultDose: 5, Unit: "drops", Frequency: "once daily", MaxDailyDoses: 1, MinHoursBetween: 24},
	{Name: "Simethicone", DefaultDose: 0.3, Unit: "ml", Frequency: "after feedings, as needed", MaxDailyDoses: 12, MinHoursBetween: 1},
	{Name: "Gripe Water", DefaultDose: 5, Unit: "ml", Frequency: "as needed", MaxDailyDoses: 6, MinHoursBetween: 1},
	{Name: "Amoxicillin", DefaultDose: 5, Unit: "ml", Frequency: "every 12 hours", MaxDailyDoses: 2, MinHoursBetween: 10},
}

// Profiles devuelve una copia del catálogo.
func Profiles() []Profile {
	return append([]Profile(nil), catalog...)
}

// LookupProfile busca por nombre exacto: " Ibuprofen " no es del catálogo.
func LookupProfile(name string) (Profile, bool) {
	for _, p := range catalog {
		if p.Name == name {
			return p, true
		}
	}
	return Profile{}, false
}

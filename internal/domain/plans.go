package domain

// Plan represents a game-server hosting tier. Plans are read-only to the
// landing page; they are owned by the plans table.
type Plan struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Price             string   `json:"price"` // monthly, currency-agnostic
	MaxPlayers        int      `json:"max_players"`
	RAMGB             int      `json:"ram_gb"`
	CPUCores          int      `json:"cpu_cores"`
	StorageGB         int      `json:"storage_gb"`
	HasDDoSProtection bool     `json:"has_ddos_protection"`
	SupportLevel      string   `json:"support_level"`
	Features          []string `json:"features"`
	IsPopular         bool     `json:"is_popular"` // Show "Популярный" badge
	IsActive          bool     `json:"is_active"`
}

// PlansResponse is the envelope served by GET /api/plans and consumed by
// the catalog loader.
type PlansResponse struct {
	Success bool   `json:"success"`
	Plans   []Plan `json:"plans"`
}

// SeedPlans returns the plans inserted into an empty plans table.
func SeedPlans() []Plan {
	base := []string{"Автобэкапы", "FTP доступ", "Панель управления"}
	return []Plan{
		{
			Name:              "Starter",
			Slug:              "starter",
			Price:             "299",
			MaxPlayers:        10,
			RAMGB:             2,
			CPUCores:          1,
			StorageGB:         10,
			HasDDoSProtection: true,
			SupportLevel:      "24/7",
			Features:          base,
			IsActive:          true,
		},
		{
			Name:              "Premium",
			Slug:              "premium",
			Price:             "599",
			MaxPlayers:        30,
			RAMGB:             4,
			CPUCores:          2,
			StorageGB:         25,
			HasDDoSProtection: true,
			SupportLevel:      "24/7",
			Features:          append(append([]string{}, base...), "Бесплатные плагины"),
			IsPopular:         true,
			IsActive:          true,
		},
		{
			Name:              "Ultimate",
			Slug:              "ultimate",
			Price:             "999",
			MaxPlayers:        60,
			RAMGB:             8,
			CPUCores:          4,
			StorageGB:         50,
			HasDDoSProtection: true,
			SupportLevel:      "24/7",
			Features:          append(append([]string{}, base...), "Бесплатные плагины", "Приоритетная поддержка"),
			IsActive:          true,
		},
	}
}

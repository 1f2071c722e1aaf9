package domain

import (
	datasetdomain "ecomdash/internal/dataset/domain"
	shareddomain "ecomdash/internal/shared/domain"
)

// Dashboard agrège les cinq tables dérivées calculées sur une même table
// filtrée. Chaque table est produite à neuf et n'est jamais mutée ensuite:
// la propriété appartient exclusivement à l'appelant.
type Dashboard struct {
	Window        shareddomain.DateRange  `json:"-"`
	RevenueOrders []RevenueOrdersRow      `json:"revenue_orders"`
	Categories    []CategoryPopularityRow `json:"categories"`
	PaymentTypes  []PaymentTypeRow        `json:"payment_types"`
	PopularDays   []PopularDayRow         `json:"popular_days"`
	RFM           []RFMRow                `json:"rfm"`
}

// BuildDashboard calcule les cinq tables séquentiellement sur la table
// filtrée. Les agrégateurs sont indépendants: même résultat que la version
// parallèle du service applicatif.
func BuildDashboard(lines []datasetdomain.OrderLine, window shareddomain.DateRange) *Dashboard {
	return &Dashboard{
		Window:        window,
		RevenueOrders: RevenueOrdersByMonth(lines),
		Categories:    CategoryPopularity(lines),
		PaymentTypes:  PaymentTypes(lines),
		PopularDays:   PopularDays(lines),
		RFM:           RFM(lines),
	}
}

// TotalOrders retourne le nombre total de lignes de commande sur la période
// (somme des compteurs mensuels)
func (d *Dashboard) TotalOrders() int {
	total := 0
	for _, row := range d.RevenueOrders {
		total += row.OrderCount
	}
	return total
}

// TotalRevenue retourne le revenu total sur la période
func (d *Dashboard) TotalRevenue() float64 {
	total := 0.0
	for _, row := range d.RevenueOrders {
		total += row.TotalPaymentValue
	}
	return total
}

// TopPaymentType retourne le moyen de paiement le plus utilisé
// (false si aucune donnée)
func (d *Dashboard) TopPaymentType() (PaymentTypeRow, bool) {
	if len(d.PaymentTypes) == 0 {
		return PaymentTypeRow{}, false
	}
	return d.PaymentTypes[0], true
}

// BestDay retourne le jour de la semaine avec le plus de commandes distinctes
// (chaîne vide si aucune donnée)
func (d *Dashboard) BestDay() string {
	if len(d.PopularDays) == 0 {
		return ""
	}
	return d.PopularDays[0].Day
}

// TopCategories retourne les k catégories les plus vendues
func (d *Dashboard) TopCategories(k int) []CategoryPopularityRow {
	if k > len(d.Categories) {
		k = len(d.Categories)
	}
	return append([]CategoryPopularityRow{}, d.Categories[:k]...)
}

// BottomCategories retourne les k catégories les moins vendues, triées par
// volume ascendant (panneau "worst performing" du tableau de bord)
func (d *Dashboard) BottomCategories(k int) []CategoryPopularityRow {
	if k > len(d.Categories) {
		k = len(d.Categories)
	}
	bottom := make([]CategoryPopularityRow, 0, k)
	for i := len(d.Categories) - 1; i >= len(d.Categories)-k; i-- {
		bottom = append(bottom, d.Categories[i])
	}
	return bottom
}

// AverageRecency retourne la récence moyenne en jours sur l'ensemble des
// clients (0 si aucune donnée)
func (d *Dashboard) AverageRecency() float64 {
	if len(d.RFM) == 0 {
		return 0
	}
	total := 0
	for _, row := range d.RFM {
		total += row.RecencyDays
	}
	return float64(total) / float64(len(d.RFM))
}

// AverageFrequency retourne la fréquence d'achat moyenne par client
func (d *Dashboard) AverageFrequency() float64 {
	if len(d.RFM) == 0 {
		return 0
	}
	total := 0
	for _, row := range d.RFM {
		total += row.Frequency
	}
	return float64(total) / float64(len(d.RFM))
}

// AverageMonetary retourne le panier cumulé moyen par client
func (d *Dashboard) AverageMonetary() float64 {
	if len(d.RFM) == 0 {
		return 0
	}
	total := 0.0
	for _, row := range d.RFM {
		total += row.Monetary
	}
	return total / float64(len(d.RFM))
}

package domain

import (
	"sort"
	"time"

	datasetdomain "ecomdash/internal/dataset/domain"
	shareddomain "ecomdash/internal/shared/domain"
)

// RevenueOrdersRow représente un mois calendaire: revenu total et nombre de
// lignes de commande
type RevenueOrdersRow struct {
	YearMonth         string  `json:"year_month"`
	Year              int     `json:"year"`
	MonthNo           int     `json:"month_no"`
	Month             string  `json:"month"`
	TotalPaymentValue float64 `json:"total_payment_value"`
	OrderCount        int     `json:"order_count"`
}

// CategoryPopularityRow représente une catégorie produit et son nombre de
// lignes vendues
type CategoryPopularityRow struct {
	Category string `json:"category"`
	Orders   int    `json:"orders"`
}

// PaymentTypeRow représente un moyen de paiement: panier moyen et nombre de
// commandes distinctes
type PaymentTypeRow struct {
	PaymentType        string  `json:"payment_type"`
	AvgPaymentValue    float64 `json:"avg_payment_value"`
	DistinctOrderCount int     `json:"distinct_order_count"`
}

// PopularDayRow représente un jour de la semaine et son nombre de commandes
// distinctes
type PopularDayRow struct {
	Day         string `json:"day"`
	TotalOrders int    `json:"total_orders"`
}

// RFMRow représente le score Recency-Frequency-Monetary d'un client
type RFMRow struct {
	CustomerID  datasetdomain.CustomerID `json:"customer_id"`
	Frequency   int                      `json:"frequency"`
	Monetary    float64                  `json:"monetary"`
	RecencyDays int                      `json:"recency_days"`
}

// weekdayRank fixe l'ordre canonique lundi…dimanche utilisé pour départager
// les jours à nombre de commandes égal (catégorie cyclique, l'ordre lexical
// n'a pas de sens)
var weekdayRank = map[string]int{
	"Monday":    0,
	"Tuesday":   1,
	"Wednesday": 2,
	"Thursday":  3,
	"Friday":    4,
	"Saturday":  5,
	"Sunday":    6,
}

// RevenueOrdersByMonth groupe les lignes par mois calendaire
// (year_month, year, month_no, month), somme payment_value et compte les
// LIGNES (une commande multi-lignes compte plusieurs fois, sémantique du
// tableau de bord d'origine). Tri chronologique ascendant (year, month_no).
func RevenueOrdersByMonth(lines []datasetdomain.OrderLine) []RevenueOrdersRow {
	buckets := make(map[string]*RevenueOrdersRow)

	for _, line := range lines {
		bucket, exists := buckets[line.YearMonth]
		if !exists {
			bucket = &RevenueOrdersRow{
				YearMonth: line.YearMonth,
				Year:      line.Year,
				MonthNo:   line.MonthNo,
				Month:     line.Month,
			}
			buckets[line.YearMonth] = bucket
		}
		bucket.TotalPaymentValue += line.PaymentValue
		bucket.OrderCount++
	}

	rows := make([]RevenueOrdersRow, 0, len(buckets))
	for _, bucket := range buckets {
		rows = append(rows, *bucket)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Year != rows[j].Year {
			return rows[i].Year < rows[j].Year
		}
		return rows[i].MonthNo < rows[j].MonthNo
	})

	return rows
}

// CategoryPopularity groupe les lignes par catégorie produit et compte les
// occurrences de product_id (nombre de lignes). Les lignes sans catégorie
// sont écartées de ce classement, jamais fusionnées dans une catégorie
// nommée. Tri descendant par volume, égalités départagées par nom de
// catégorie ascendant.
func CategoryPopularity(lines []datasetdomain.OrderLine) []CategoryPopularityRow {
	counts := make(map[string]int)

	for _, line := range lines {
		if !line.HasCategory() {
			continue
		}
		counts[line.Category]++
	}

	rows := make([]CategoryPopularityRow, 0, len(counts))
	for category, orders := range counts {
		rows = append(rows, CategoryPopularityRow{
			Category: category,
			Orders:   orders,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Orders != rows[j].Orders {
			return rows[i].Orders > rows[j].Orders
		}
		return rows[i].Category < rows[j].Category
	})

	return rows
}

// paymentTypeAcc accumulateur intermédiaire par moyen de paiement
type paymentTypeAcc struct {
	sum      float64
	rowCount int
	orders   map[datasetdomain.OrderID]bool // set de commandes distinctes
}

// PaymentTypes groupe les lignes par moyen de paiement: panier moyen
// (moyenne arithmétique de payment_value sur les lignes) et nombre de
// commandes DISTINCTES (une commande multi-lignes compte une seule fois).
// Tri descendant par commandes distinctes, égalités par nom ascendant.
func PaymentTypes(lines []datasetdomain.OrderLine) []PaymentTypeRow {
	accs := make(map[string]*paymentTypeAcc)

	for _, line := range lines {
		acc, exists := accs[line.PaymentType]
		if !exists {
			acc = &paymentTypeAcc{orders: make(map[datasetdomain.OrderID]bool)}
			accs[line.PaymentType] = acc
		}
		acc.sum += line.PaymentValue
		acc.rowCount++
		acc.orders[line.OrderID] = true
	}

	rows := make([]PaymentTypeRow, 0, len(accs))
	for paymentType, acc := range accs {
		rows = append(rows, PaymentTypeRow{
			PaymentType:        paymentType,
			AvgPaymentValue:    acc.sum / float64(acc.rowCount),
			DistinctOrderCount: len(acc.orders),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DistinctOrderCount != rows[j].DistinctOrderCount {
			return rows[i].DistinctOrderCount > rows[j].DistinctOrderCount
		}
		return rows[i].PaymentType < rows[j].PaymentType
	})

	return rows
}

// PopularDays groupe les lignes par jour de la semaine et compte les
// commandes DISTINCTES par jour. Tri descendant par volume, égalités
// départagées par l'ordre canonique lundi…dimanche.
func PopularDays(lines []datasetdomain.OrderLine) []PopularDayRow {
	daySets := make(map[string]map[datasetdomain.OrderID]bool)

	for _, line := range lines {
		set, exists := daySets[line.Day]
		if !exists {
			set = make(map[datasetdomain.OrderID]bool)
			daySets[line.Day] = set
		}
		set[line.OrderID] = true
	}

	rows := make([]PopularDayRow, 0, len(daySets))
	for day, set := range daySets {
		rows = append(rows, PopularDayRow{
			Day:         day,
			TotalOrders: len(set),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalOrders != rows[j].TotalOrders {
			return rows[i].TotalOrders > rows[j].TotalOrders
		}
		return weekdayRank[rows[i].Day] < weekdayRank[rows[j].Day]
	})

	return rows
}

// rfmAcc accumulateur intermédiaire par client
type rfmAcc struct {
	frequency int
	monetary  float64
	lastOrder time.Time
}

// RFM calcule par client: frequency (nombre de lignes), monetary (somme de
// payment_value) et recency_days (jours écoulés entre sa dernière commande et
// la date de référence, c'est-à-dire la date d'achat la plus récente observée
// dans TOUTE la table en entrée). Le client le plus récent a une récence de 0.
// Sortie triée par customer_id ascendant pour une restitution reproductible.
func RFM(lines []datasetdomain.OrderLine) []RFMRow {
	if len(lines) == 0 {
		return []RFMRow{}
	}

	accs := make(map[datasetdomain.CustomerID]*rfmAcc)
	referenceDate := lines[0].PurchaseDate()

	for _, line := range lines {
		date := line.PurchaseDate()
		if date.After(referenceDate) {
			referenceDate = date
		}

		acc, exists := accs[line.CustomerID]
		if !exists {
			acc = &rfmAcc{lastOrder: date}
			accs[line.CustomerID] = acc
		}
		acc.frequency++
		acc.monetary += line.PaymentValue
		if date.After(acc.lastOrder) {
			acc.lastOrder = date
		}
	}

	rows := make([]RFMRow, 0, len(accs))
	for customerID, acc := range accs {
		rows = append(rows, RFMRow{
			CustomerID:  customerID,
			Frequency:   acc.frequency,
			Monetary:    acc.monetary,
			RecencyDays: shareddomain.DaysBetween(acc.lastOrder, referenceDate),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CustomerID < rows[j].CustomerID
	})

	return rows
}

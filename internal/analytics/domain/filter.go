package domain

import (
	datasetdomain "ecomdash/internal/dataset/domain"
	shareddomain "ecomdash/internal/shared/domain"
)

// FilterByDateRange retourne les lignes dont la date d'achat tombe dans la
// fenêtre inclusive [start, end]. La comparaison porte sur la date seule:
// l'heure est ignorée, deux timestamps du même jour sont traités à l'identique.
// Une fenêtre inversée sélectionne zéro ligne, sans erreur.
// Retourne toujours une nouvelle slice, la table source n'est jamais modifiée.
func FilterByDateRange(lines []datasetdomain.OrderLine, window shareddomain.DateRange) []datasetdomain.OrderLine {
	filtered := make([]datasetdomain.OrderLine, 0, len(lines))
	if window.IsEmpty() {
		return filtered
	}

	for _, line := range lines {
		if window.Contains(line.PurchasedAt) {
			filtered = append(filtered, line)
		}
	}

	return filtered
}

// DatasetBounds retourne la fenêtre [min, max] des dates d'achat observées
// dans la table. Le booléen vaut false sur table vide.
func DatasetBounds(lines []datasetdomain.OrderLine) (shareddomain.DateRange, bool) {
	if len(lines) == 0 {
		return shareddomain.DateRange{}, false
	}

	min := lines[0].PurchaseDate()
	max := min
	for _, line := range lines[1:] {
		d := line.PurchaseDate()
		if d.Before(min) {
			min = d
		}
		if d.After(max) {
			max = d
		}
	}

	return shareddomain.NewDateRange(min, max), true
}

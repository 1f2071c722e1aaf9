package domain

import "time"

// DateRange représente une fenêtre calendaire inclusive [start, end]
// DESIGN PATTERN: Value Object (DDD)
//   - Immutable: pas de setters, valeurs fixées à la création
//   - Comparaison sur la date seule: les composantes horaires sont tronquées
//     à la construction, deux timestamps du même jour calendaire tombent donc
//     dans la fenêtre quelle que soit l'heure
//   - Une fenêtre inversée (start > end) est valide mais vide: le filtre
//     piloté par le sélecteur de dates est permissif, jamais en erreur
type DateRange struct {
	start time.Time // minuit UTC
	end   time.Time // minuit UTC
}

// NewDateRange crée une fenêtre inclusive entre deux dates calendaires.
// Les timestamps sont tronqués à minuit UTC.
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{
		start: DateOf(start),
		end:   DateOf(end),
	}
}

// NewDateRangeFromDays crée une fenêtre couvrant les N derniers jours
// jusqu'à aujourd'hui inclus
func NewDateRangeFromDays(days int) DateRange {
	now := time.Now()
	return NewDateRange(now.AddDate(0, 0, -days), now)
}

// Start retourne la date de début
func (dr DateRange) Start() time.Time {
	return dr.start
}

// End retourne la date de fin
func (dr DateRange) End() time.Time {
	return dr.end
}

// IsEmpty indique si la fenêtre ne peut contenir aucune date (start > end)
func (dr DateRange) IsEmpty() bool {
	return dr.end.Before(dr.start)
}

// Contains vérifie si la composante date d'un timestamp tombe dans la fenêtre
func (dr DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(dr.start) && !d.After(dr.end)
}

// Days retourne le nombre de jours couverts par la fenêtre (0 si vide)
func (dr DateRange) Days() int {
	if dr.IsEmpty() {
		return 0
	}
	return int(dr.end.Sub(dr.start).Hours()/24) + 1
}

// DateOf tronque un timestamp à sa composante date (minuit UTC)
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween retourne le nombre de jours entiers entre deux dates
// (from antérieure ou égale à to)
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}

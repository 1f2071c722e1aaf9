package application

import (
	"sync"
	"time"

	"ecomdash/internal/analytics/domain"
	datasetdomain "ecomdash/internal/dataset/domain"
	shareddomain "ecomdash/internal/shared/domain"
	sharedinfra "ecomdash/internal/shared/infrastructure"
)

// DashboardService calcule les tables du tableau de bord sur une fenêtre de
// dates. La table source est chargée une fois à la construction et jamais
// mutée; chaque demande produit des tables dérivées neuves.
type DashboardService struct {
	lines    []datasetdomain.OrderLine
	cache    sharedinfra.Cache
	cacheTTL time.Duration
}

// NewDashboardService crée une nouvelle instance de DashboardService
func NewDashboardService(lines []datasetdomain.OrderLine, cache sharedinfra.Cache) *DashboardService {
	return &DashboardService{
		lines:    lines,
		cache:    cache,
		cacheTTL: 5 * time.Minute,
	}
}

// GetDashboard retourne les cinq tables dérivées pour la fenêtre demandée.
// Vérifie d'abord le cache; sinon filtre la table source une seule fois puis
// lance les cinq agrégateurs en parallèle (ils partagent la table filtrée en
// lecture seule et produisent des sorties disjointes). Idempotent: deux
// appels avec la même fenêtre produisent des tables identiques, lignes et
// ordre compris.
func (s *DashboardService) GetDashboard(window shareddomain.DateRange) *domain.Dashboard {
	cacheKey := s.buildCacheKey(window)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*domain.Dashboard)
	}

	filtered := domain.FilterByDateRange(s.lines, window)
	dashboard := &domain.Dashboard{Window: window}

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		dashboard.RevenueOrders = domain.RevenueOrdersByMonth(filtered)
	}()
	go func() {
		defer wg.Done()
		dashboard.Categories = domain.CategoryPopularity(filtered)
	}()
	go func() {
		defer wg.Done()
		dashboard.PaymentTypes = domain.PaymentTypes(filtered)
	}()
	go func() {
		defer wg.Done()
		dashboard.PopularDays = domain.PopularDays(filtered)
	}()
	go func() {
		defer wg.Done()
		dashboard.RFM = domain.RFM(filtered)
	}()

	wg.Wait()

	s.cache.Set(cacheKey, dashboard, s.cacheTTL)

	return dashboard
}

// FilteredLines retourne la table de travail pour la fenêtre demandée
// (utilisée par les exports de lignes brutes)
func (s *DashboardService) FilteredLines(window shareddomain.DateRange) []datasetdomain.OrderLine {
	return domain.FilterByDateRange(s.lines, window)
}

// Bounds retourne la fenêtre [min, max] des dates d'achat du jeu de données,
// fenêtre par défaut du sélecteur de dates (false sur jeu vide)
func (s *DashboardService) Bounds() (shareddomain.DateRange, bool) {
	return domain.DatasetBounds(s.lines)
}

// LineCount retourne le nombre de lignes du jeu de données chargé
func (s *DashboardService) LineCount() int {
	return len(s.lines)
}

// buildCacheKey construit la clé de cache d'une fenêtre de dates
func (s *DashboardService) buildCacheKey(window shareddomain.DateRange) string {
	return sharedinfra.NewCacheKeyBuilder().
		Add("dashboard").
		AddDate(window.Start()).
		AddDate(window.End()).
		Build()
}

// InvalidateCache invalide le cache pour une fenêtre donnée
func (s *DashboardService) InvalidateCache(window shareddomain.DateRange) {
	s.cache.Delete(s.buildCacheKey(window))
}

// ClearCache vide tout le cache
func (s *DashboardService) ClearCache() {
	s.cache.Clear()
}

package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	catalogdomain "github.com/seeforge-labs/seeforge-gateway/internal/catalog/domain"
	"github.com/seeforge-labs/seeforge-gateway/internal/catalog/service"
)

// TemplateFetcher pulls the template catalog from the upstream API.
type TemplateFetcher interface {
	FetchTemplates(ctx context.Context) ([]catalogdomain.Template, error)
}

type Scheduler struct {
	catalog *service.Service
	fetcher TemplateFetcher
	spec    string
	cron    *cron.Cron
}

func NewScheduler(catalog *service.Service, fetcher TemplateFetcher, spec string) *Scheduler {
	return &Scheduler{catalog: catalog, fetcher: fetcher, spec: spec}
}

// Start registers the periodic catalog refresh and runs one refresh
// immediately so a fresh process does not serve stale demo data longer
// than necessary.
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc(s.spec, func() {
		s.refresh()
	})
	if err != nil {
		log.Printf("Failed to create catalog refresh job: %v", err)
		return
	}

	log.Printf("Catalog refresh scheduler started (spec %q)", s.spec)
	c.Start()
	s.cron = c

	go s.refresh()
}

// Stop halts the refresh schedule. In-flight refreshes finish on their own.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	templates, err := s.fetcher.FetchTemplates(ctx)
	if err != nil {
		// Keep serving the previous catalog; a refresh miss is not fatal.
		log.Printf("Catalog refresh failed: %v", err)
		return
	}

	s.catalog.SetTemplates(templates)
	log.Printf("Catalog refreshed (%d templates)", len(templates))
}

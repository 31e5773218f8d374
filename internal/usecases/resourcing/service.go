package resourcing

import (
	"context"
	"strings"

	"github.com/somework/landing-api/infrastructure/repository"
	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/pkg/log"
)

type Resourcer interface {
	ListPublic(ctx context.Context) ([]*domain.Resource, error)
	ListAdmin(ctx context.Context) ([]*domain.Resource, error)
	Get(ctx context.Context, id string) (*domain.Resource, error)
	Create(ctx context.Context, req *domain.ResourceRequest) (*domain.Resource, error)
	Update(ctx context.Context, id string, req *domain.ResourceRequest) (*domain.Resource, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*domain.ResourceStats, error)
	Landing(ctx context.Context) (*domain.LandingPage, error)
}

// SettingsProvider fornece os textos da landing page
type SettingsProvider interface {
	GetSettings(ctx context.Context) (domain.SiteSettings, error)
}

type Service struct {
	repo     repository.ResourceRepository
	settings SettingsProvider
}

func NewService(repo repository.ResourceRepository, settings SettingsProvider) *Service {
	return &Service{
		repo:     repo,
		settings: settings,
	}
}

// ListPublic lista na ordem de cadastro, como a landing page exibe
func (s *Service) ListPublic(ctx context.Context) ([]*domain.Resource, error) {
	return s.repo.List(ctx, domain.SortAscending)
}

// ListAdmin lista os mais recentes primeiro
func (s *Service) ListAdmin(ctx context.Context) ([]*domain.Resource, error) {
	return s.repo.List(ctx, domain.SortDescending)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Resource, error) {
	resource, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, ErrResourceNotFound
	}
	return resource, nil
}

func (s *Service) Create(ctx context.Context, req *domain.ResourceRequest) (*domain.Resource, error) {
	resource, err := normalize(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, resource); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"resource_id": resource.ID,
		"type":        resource.Type,
	}).Info("Resource criado")

	return resource, nil
}

func (s *Service) Update(ctx context.Context, id string, req *domain.ResourceRequest) (*domain.Resource, error) {
	resource, err := normalize(req)
	if err != nil {
		return nil, err
	}

	resource.ID = id
	if err := s.repo.Update(ctx, resource); err != nil {
		return nil, err
	}

	return resource, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	log.ForContext(ctx).WithField("resource_id", id).Info("Resource removido")
	return nil
}

// Stats contagem de resources por tipo para o dashboard do admin
func (s *Service) Stats(ctx context.Context) (*domain.ResourceStats, error) {
	counts, err := s.repo.CountByType(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.ResourceStats{
		FreeResources: counts[domain.ResourceTypeFree],
		PaidResources: counts[domain.ResourceTypePaid],
	}
	stats.TotalResources = stats.FreeResources + stats.PaidResources

	return stats, nil
}

// Landing monta o payload da página inicial. Falha ao ler as configurações não
// derruba a página, os textos padrão são usados.
func (s *Service) Landing(ctx context.Context) (*domain.LandingPage, error) {
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Falha ao carregar configurações do site, usando padrões")
		settings = domain.DefaultSiteSettings()
	}

	resources, err := s.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	page := &domain.LandingPage{
		Settings:      settings,
		FreeResources: []domain.ResourceCard{},
		PaidResources: []domain.ResourceCard{},
	}

	for _, r := range resources {
		card := r.Card()
		if card.ButtonLabel == "" {
			card.ButtonLabel = domain.DefaultButtonLabel
		}

		switch r.Type {
		case domain.ResourceTypeFree:
			page.FreeResources = append(page.FreeResources, card)
		case domain.ResourceTypePaid:
			page.PaidResources = append(page.PaidResources, card)
		}
	}

	return page, nil
}

// normalize valida o request e aplica os padrões (tipo free e label "Ambil Gratis")
func normalize(req *domain.ResourceRequest) (*domain.Resource, error) {
	resource := &domain.Resource{
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Type:        domain.ResourceType(strings.ToLower(strings.TrimSpace(string(req.Type)))),
		Link:        strings.TrimSpace(req.Link),
		ButtonLabel: strings.TrimSpace(req.ButtonLabel),
	}

	if resource.Title == "" {
		return nil, ErrTitleRequired
	}

	if resource.Link == "" {
		return nil, ErrLinkRequired
	}

	if resource.Type == "" {
		resource.Type = domain.ResourceTypeFree
	}

	if !resource.Type.IsValid() {
		return nil, ErrInvalidType
	}

	if resource.ButtonLabel == "" {
		resource.ButtonLabel = domain.DefaultButtonLabel
	}

	return resource, nil
}

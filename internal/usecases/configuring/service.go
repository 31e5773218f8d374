package configuring

import (
	"context"
	"sort"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"

	"github.com/somework/landing-api/infrastructure/repository"
	"github.com/somework/landing-api/internal/domain"
	"github.com/somework/landing-api/pkg/log"
)

type Configurer interface {
	GetSettings(ctx context.Context) (domain.SiteSettings, error)
	SaveSettings(ctx context.Context, settings domain.SiteSettings) (domain.SiteSettings, error)
}

type Service struct {
	repo repository.SiteConfigRepository
	now  func() time.Time
}

func NewService(repo repository.SiteConfigRepository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// GetSettings aplica os valores salvos sobre os padrões. Valores vazios e chaves
// desconhecidas são ignorados.
func (s *Service) GetSettings(ctx context.Context) (domain.SiteSettings, error) {
	settings := domain.DefaultSiteSettings()

	entries, err := s.repo.List(ctx)
	if err != nil {
		return settings, errors.Wrap(err, "configuring: list site config")
	}

	values := make(map[string]interface{}, len(entries))
	for _, e := range entries {
		if e.Value != "" {
			values[e.Key] = e.Value
		}
	}

	if err := mapstructure.Decode(values, &settings); err != nil {
		return domain.DefaultSiteSettings(), errors.Wrap(err, "configuring: decode site config")
	}

	return settings, nil
}

// SaveSettings grava todas as chaves conhecidas com o mesmo updated_at
func (s *Service) SaveSettings(ctx context.Context, settings domain.SiteSettings) (domain.SiteSettings, error) {
	values, err := Encode(settings)
	if err != nil {
		return settings, err
	}

	now := s.now()
	entries := make([]domain.SiteConfigEntry, 0, len(values))
	for _, key := range sortedKeys(values) {
		entries = append(entries, domain.SiteConfigEntry{Key: key, Value: values[key], UpdatedAt: now})
	}

	if err := s.repo.Upsert(ctx, entries); err != nil {
		return settings, errors.Wrap(err, "configuring: upsert site config")
	}

	log.ForContext(ctx).WithField("keys", len(entries)).Info("Configurações do site atualizadas")

	return settings, nil
}

// Encode converte as configurações para o formato key/value da tabela site_config
func Encode(settings domain.SiteSettings) (map[string]string, error) {
	values := map[string]string{}
	if err := mapstructure.Decode(settings, &values); err != nil {
		return nil, errors.Wrap(err, "configuring: encode site config")
	}
	return values, nil
}

// Keys lista as chaves conhecidas em ordem alfabética
func Keys() []string {
	values, _ := Encode(domain.SiteSettings{})
	return sortedKeys(values)
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

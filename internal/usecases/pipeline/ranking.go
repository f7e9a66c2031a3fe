package pipeline

import (
	"context"

	"github.com/yuuki-courage/aads/infrastructure/repository"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/analyzing"
	"github.com/yuuki-courage/aads/pkg/apiErrors"
	"github.com/yuuki-courage/aads/pkg/log"
)

// loadSeoRankingData abre o banco de ranking uma única vez e o fecha em qualquer saída.
// Sem caminho configurado, com SEO desligado, com o recurso ausente ou se a abertura falhar,
// retorna nil e a análise segue sem ajuste SEO. Só erros de consulta interrompem a execução.
func (s *Service) loadSeoRankingData(ctx context.Context, records []domain.NormalizedRecord, mappings []domain.KeywordMapping) (*domain.SeoRankingData, error) {
	target := s.opts.RankingDBPath
	if target == "" || !s.opts.Seo.Enabled || s.opener == nil || !s.opener.Available(target) {
		return nil, nil
	}

	repo, err := s.opener.Open(ctx, target)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("path", target).Warn("Não foi possível abrir o banco de ranking, ajuste SEO desativado")
		return nil, nil
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Erro ao fechar banco de ranking")
		}
	}()

	data, err := BuildSeoRankingData(ctx, repo, records, mappings)
	if err != nil {
		return nil, NewPipelineError(ErrRankingLookup, apiErrors.ErrDatabaseOperation, "seo", err.Error())
	}
	data.DBPath = target
	return data, nil
}

// BuildSeoRankingData associa as palavras-chave dos anúncios às rastreadas e busca a
// posição mais recente de cada ASIN. O resultado é indexado pela palavra-chave normalizada.
func BuildSeoRankingData(ctx context.Context, repo repository.RankingRepository, records []domain.NormalizedRecord, mappings []domain.KeywordMapping) (*domain.SeoRankingData, error) {
	tracked, err := repo.GetTrackedKeywords(ctx)
	if err != nil {
		return nil, err
	}
	snapshot, err := repo.GetLatestSnapshotDate(ctx)
	if err != nil {
		return nil, err
	}

	asins := distinct(records, func(r domain.NormalizedRecord) string { return r.ASIN })
	if len(asins) == 0 {
		asins, err = repo.GetTrackedAsins(ctx)
		if err != nil {
			return nil, err
		}
	}

	adKeywords := distinct(records, func(r domain.NormalizedRecord) string { return r.KeywordText })
	matches := analyzing.MatchKeywords(adKeywords, tracked, mappings)

	data := &domain.SeoRankingData{
		Rankings:     make(map[string][]domain.KeywordRankingInfo),
		SnapshotDate: snapshot,
	}
	for _, match := range matches {
		key := analyzing.NormalizeKeyword(match.AdKeyword)
		if _, done := data.Rankings[key]; done {
			continue
		}

		var infos []domain.KeywordRankingInfo
		for _, asin := range asins {
			info, err := repo.GetLatestRanking(ctx, match.RankingKeyword, asin)
			if err != nil {
				return nil, err
			}
			if info != nil && info.Found {
				infos = append(infos, *info)
			}
		}
		if len(infos) > 0 {
			data.Rankings[key] = infos
		}
	}
	return data, nil
}

func distinct(records []domain.NormalizedRecord, field func(domain.NormalizedRecord) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		v := field(r)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

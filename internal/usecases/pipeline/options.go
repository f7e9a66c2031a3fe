package pipeline

import (
	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/analyzing"
	"github.com/yuuki-courage/aads/internal/usecases/normalizing"
)

// Options reúne os parâmetros imutáveis passados para os motores de análise
type Options struct {
	TargetAcos         float64
	Cpc                analyzing.CpcOptions
	Promotion          analyzing.PromotionOptions
	Anomaly            analyzing.AnomalyThresholds
	SkuRules           analyzing.SkuRules
	Seo                domain.SeoConfig
	Headers            normalizing.HeaderCandidates
	RankingDBPath      string
	LayerPolicyPath    string
	KeywordMappingPath string
}

// DefaultOptions retorna as opções padrão, iguais aos padrões da configuração
func DefaultOptions() Options {
	return Options{
		TargetAcos: 0.25,
		Cpc:        analyzing.CpcOptions{MinClicks: 5, TargetAcos: 0.25},
		Promotion:  analyzing.PromotionOptions{MinClicks: 5, MinCvr: 0.03, NegativeAcosThreshold: 0.4},
		Anomaly:    analyzing.AnomalyThresholds{Impression: 0.5, Spend: 0.5, Cpc: 0.3},
		SkuRules:   analyzing.DefaultSkuRules(),
		Seo:        domain.SeoConfig{Enabled: true, Factors: analyzing.DefaultSeoFactors()},
		Headers:    normalizing.DefaultHeaderCandidates(),
	}
}

// OptionsFromConfig converte a configuração carregada em opções do pipeline
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()

	opt := cfg.Optimisation
	opts.TargetAcos = opt.TargetAcos
	opts.Cpc = analyzing.CpcOptions{MinClicks: opt.MinClicksCpc, TargetAcos: opt.TargetAcos}
	opts.Promotion = analyzing.PromotionOptions{
		MinClicks:             opt.MinClicksPromotion,
		MinCvr:                opt.MinCvrPromotion,
		NegativeAcosThreshold: opt.NegativeAcosThreshold,
	}
	opts.Anomaly = analyzing.AnomalyThresholds{
		Impression: cfg.Anomaly.ImpressionThreshold,
		Spend:      cfg.Anomaly.SpendThreshold,
		Cpc:        cfg.Anomaly.CpcThreshold,
	}

	factors := cfg.Seo.Factors
	if len(factors) == 0 {
		factors = analyzing.DefaultSeoFactors()
	}
	opts.Seo = domain.SeoConfig{
		Enabled:    cfg.Seo.Enabled,
		Factors:    factors,
		CpcCeiling: cfg.Seo.CpcCeiling,
	}

	opts.RankingDBPath = cfg.RankingDB.Path
	opts.LayerPolicyPath = cfg.LayerPolicy.Path
	opts.KeywordMappingPath = cfg.Seo.KeywordMappingPath
	return opts
}

package generating

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/pkg/utils"
)

// ErrMissingAnalysisContext é retornado quando o modo update é chamado sem resultado de análise
var ErrMissingAnalysisContext = errors.New("Update mode requires analyzeResult context (--input flag)")

// ErrUnknownTemplateMode é retornado para modos diferentes de create e update
var ErrUnknownTemplateMode = errors.New("modo de template desconhecido")

// FormatCampaignName monta o nome da campanha pelo template de nomes. Cada marcador é
// substituído apenas na primeira ocorrência.
func FormatCampaignName(cfg domain.CampaignTemplateConfig, kind string) string {
	template := domain.DefaultCampaignNameFormat
	typeLabel := kind
	if cfg.Naming != nil {
		if cfg.Naming.CampaignTemplate != "" {
			template = cfg.Naming.CampaignTemplate
		}
		if label, ok := cfg.Naming.TypeLabels[kind]; ok {
			typeLabel = label
		}
	}

	name := strings.Replace(template, "{brand}", cfg.BrandName, 1)
	name = strings.Replace(name, "{code}", cfg.BrandCode, 1)
	name = strings.Replace(name, "{typeLabel}", typeLabel, 1)
	return strings.Replace(name, "{suffix}", cfg.DateSuffix, 1)
}

// FormatAdGroupName monta o nome do grupo de anúncios pelo template de nomes
func FormatAdGroupName(cfg domain.CampaignTemplateConfig, kind string) string {
	template := domain.DefaultAdGroupNameFormat
	descriptor := kind
	if cfg.Naming != nil {
		if cfg.Naming.AdGroupTemplate != "" {
			template = cfg.Naming.AdGroupTemplate
		}
		if d, ok := cfg.Naming.AdGroupDescriptors[kind]; ok {
			descriptor = d
		}
	}

	name := strings.Replace(template, "{brand}", cfg.BrandName, 1)
	name = strings.Replace(name, "{code}", cfg.BrandCode, 1)
	return strings.Replace(name, "{descriptor}", descriptor, 1)
}

// FallbackDefaultBid é a média arredondada dos lances padrão dos tipos configurados,
// ou o lance padrão global quando nenhum está definido.
func FallbackDefaultBid(cfg domain.CampaignTemplateConfig) float64 {
	if cfg.Campaigns == nil {
		return domain.DefaultTemplateBid
	}

	var bids []float64
	if c := cfg.Campaigns.Auto; c != nil && c.DefaultBid != 0 {
		bids = append(bids, c.DefaultBid)
	}
	if c := cfg.Campaigns.Phrase; c != nil && c.DefaultBid != 0 {
		bids = append(bids, c.DefaultBid)
	}
	if c := cfg.Campaigns.Broad; c != nil && c.DefaultBid != 0 {
		bids = append(bids, c.DefaultBid)
	}
	if c := cfg.Campaigns.Asin; c != nil && c.DefaultBid != 0 {
		bids = append(bids, c.DefaultBid)
	}
	if len(bids) == 0 {
		return domain.DefaultTemplateBid
	}

	var sum float64
	for _, b := range bids {
		sum += b
	}
	return utils.RoundHalfUp(sum / float64(len(bids)))
}

// CampaignTemplateRows gera a estrutura de campanhas do template. No modo create as campanhas
// são criadas do zero; no modo update os lances são atualizados a partir da análise.
func CampaignTemplateRows(cfg domain.CampaignTemplateConfig, mode domain.TemplateMode, analysis *domain.AnalysisResult) ([]domain.BulkOutputRow, []string, error) {
	switch mode {
	case domain.TemplateModeCreate:
		return templateCreateRows(cfg), nil, nil
	case domain.TemplateModeUpdate:
		if analysis == nil {
			return nil, nil, ErrMissingAnalysisContext
		}
		rows, warnings := templateUpdateRows(cfg, analysis)
		return rows, warnings, nil
	}
	return nil, nil, fmt.Errorf("%w: %s", ErrUnknownTemplateMode, mode)
}

func templateCreateRows(cfg domain.CampaignTemplateConfig) []domain.BulkOutputRow {
	if cfg.Campaigns == nil {
		return nil
	}

	var rows []domain.BulkOutputRow
	for _, tc := range cfg.Campaigns.Specs() {
		switch spec := tc.Spec.(type) {
		case domain.AutoCampaign:
			rows = append(rows, typedCampaignRows(cfg, tc.Kind, spec.CampaignSettings, domain.TargetingAuto, nil, nil)...)
		case domain.KeywordCampaign:
			rows = append(rows, typedCampaignRows(cfg, tc.Kind, spec.CampaignSettings, domain.TargetingManual, spec.Keywords, nil)...)
		case domain.AsinCampaign:
			rows = append(rows, typedCampaignRows(cfg, tc.Kind, spec.CampaignSettings, domain.TargetingManual, nil, spec.Targets)...)
		case domain.ManualCampaign:
			rows = append(rows, manualCampaignRows(cfg, spec)...)
		}
	}
	return rows
}

func typedCampaignRows(cfg domain.CampaignTemplateConfig, kind string, s domain.CampaignSettings, targeting string, keywords []domain.KeywordEntry, targets []domain.ProductTargetEntry) []domain.BulkOutputRow {
	campaignName := FormatCampaignName(cfg, kind)
	adGroupName := FormatAdGroupName(cfg, kind)

	rows := []domain.BulkOutputRow{
		campaignCreateRow(cfg, campaignName, s.DailyBudget, targeting, s.BiddingStrategy, s.TopOfSearchPercentage, s.ProductPagesPercentage),
		adGroupCreateRow(campaignName, adGroupName, s.DefaultBid),
	}
	rows = append(rows, productAdRows(campaignName, adGroupName, resolveSkus(s.SKUs, cfg.SKUs))...)
	rows = append(rows, keywordCreateRows(campaignName, adGroupName, keywords, kind, s.DefaultBid)...)
	rows = append(rows, productTargetingCreateRows(campaignName, adGroupName, targets, s.DefaultBid)...)
	rows = append(rows, campaignNegativeRows(campaignName, cfg.NegativeKeywords)...)
	return rows
}

func manualCampaignRows(cfg domain.CampaignTemplateConfig, m domain.ManualCampaign) []domain.BulkOutputRow {
	targeting := m.TargetingType
	if targeting == "" {
		targeting = domain.TargetingManual
	}
	fallbackBid := FallbackDefaultBid(cfg)

	rows := []domain.BulkOutputRow{
		campaignCreateRow(cfg, m.Name, m.DailyBudget, targeting, m.BiddingStrategy, m.TopOfSearchPercentage, m.ProductPagesPercentage),
	}
	for _, ag := range m.AdGroups {
		bid := ag.DefaultBid
		if bid == 0 {
			bid = fallbackBid
		}
		skus := ag.SKUs
		if len(skus) == 0 {
			skus = m.SKUs
		}

		rows = append(rows, adGroupCreateRow(m.Name, ag.Name, bid))
		rows = append(rows, productAdRows(m.Name, ag.Name, resolveSkus(skus, cfg.SKUs))...)
		rows = append(rows, keywordCreateRows(m.Name, ag.Name, ag.Keywords, domain.MatchExact, bid)...)
		rows = append(rows, productTargetingCreateRows(m.Name, ag.Name, ag.ProductTargets, bid)...)
	}
	rows = append(rows, campaignNegativeRows(m.Name, m.NegativeKeywords)...)
	return rows
}

func resolveSkus(own, global []string) []string {
	if len(own) > 0 {
		return own
	}
	return global
}

func campaignCreateRow(cfg domain.CampaignTemplateConfig, name string, budget float64, targeting, strategy string, topOfSearch, productPages *float64) domain.BulkOutputRow {
	if strategy == "" {
		strategy = cfg.BiddingStrategy
	}
	if strategy == "" {
		strategy = domain.DefaultBiddingStrategy
	}

	row := domain.NewBulkRow()
	row.Entity = EntityCampaign
	row.Operation = OperationCreateLower
	row.CampaignName = name
	// o nome serve de vínculo provisório até a plataforma atribuir o ID
	row.CampaignID = name
	row.PortfolioID = cfg.PortfolioID
	row.CampaignTargetingType = targeting
	row.State = domain.StateEnabled
	row.DailyBudget = formatBid(budget)
	row.BiddingStrategy = strategy
	if topOfSearch != nil && *topOfSearch > 0 {
		row.PlacementTopOfSearch = formatBid(*topOfSearch)
	}
	if productPages != nil && *productPages > 0 {
		row.PlacementProductPages = formatBid(*productPages)
	}
	return row
}

func adGroupCreateRow(campaignName, adGroupName string, defaultBid float64) domain.BulkOutputRow {
	row := domain.NewBulkRow()
	row.Entity = EntityAdGroup
	row.Operation = OperationCreateLower
	row.CampaignName = campaignName
	row.CampaignID = campaignName
	row.AdGroupName = adGroupName
	row.AdGroupID = adGroupName
	row.AdGroupDefaultBid = formatBid(defaultBid)
	row.State = domain.StateEnabled
	return row
}

func productAdRows(campaignName, adGroupName string, skus []string) []domain.BulkOutputRow {
	rows := make([]domain.BulkOutputRow, 0, len(skus))
	for _, sku := range skus {
		row := domain.NewBulkRow()
		row.Entity = EntityProductAd
		row.Operation = OperationCreateLower
		row.CampaignName = campaignName
		row.CampaignID = campaignName
		row.AdGroupName = adGroupName
		row.AdGroupID = adGroupName
		row.SKUOrASIN = sku
		row.State = domain.StateEnabled
		rows = append(rows, row)
	}
	return rows
}

func keywordCreateRows(campaignName, adGroupName string, keywords []domain.KeywordEntry, matchType string, fallbackBid float64) []domain.BulkOutputRow {
	rows := make([]domain.BulkOutputRow, 0, len(keywords))
	for _, kw := range keywords {
		row := domain.NewBulkRow()
		row.Entity = EntityKeyword
		row.Operation = OperationCreateLower
		row.CampaignName = campaignName
		row.CampaignID = campaignName
		row.AdGroupName = adGroupName
		row.AdGroupID = adGroupName
		row.KeywordText = kw.Text
		row.MatchType = normalizedMatchType(matchType)
		row.Bid = formatBidPtr(kw.Bid, fallbackBid)
		row.State = domain.StateEnabled
		rows = append(rows, row)
	}
	return rows
}

func productTargetingCreateRows(campaignName, adGroupName string, targets []domain.ProductTargetEntry, fallbackBid float64) []domain.BulkOutputRow {
	rows := make([]domain.BulkOutputRow, 0, len(targets))
	for _, t := range targets {
		row := domain.NewBulkRow()
		row.Entity = EntityProductTargeting
		row.Operation = OperationCreateLower
		row.CampaignName = campaignName
		row.CampaignID = campaignName
		row.AdGroupName = adGroupName
		row.AdGroupID = adGroupName
		row.ProductTargetingExpression = asinExpression(t.ASIN)
		row.Bid = formatBidPtr(t.Bid, fallbackBid)
		row.State = domain.StateEnabled
		rows = append(rows, row)
	}
	return rows
}

func campaignNegativeRows(campaignName string, keywords []string) []domain.BulkOutputRow {
	rows := make([]domain.BulkOutputRow, 0, len(keywords))
	for _, kw := range keywords {
		row := domain.NewBulkRow()
		row.Entity = EntityCampaignNegativeKeyword
		row.Operation = OperationCreateLower
		row.CampaignName = campaignName
		row.CampaignID = campaignName
		row.KeywordText = kw
		row.MatchType = domain.MatchNegativeExact
		row.State = domain.StateEnabled
		rows = append(rows, row)
	}
	return rows
}

func templateUpdateRows(cfg domain.CampaignTemplateConfig, analysis *domain.AnalysisResult) ([]domain.BulkOutputRow, []string) {
	var warnings []string

	campaignIDs := make(map[string]string)
	adGroupIDs := make(map[string]string)
	for _, r := range analysis.Records {
		if r.CampaignID != "" && r.CampaignName != "" {
			campaignIDs[r.CampaignName] = r.CampaignID
		}
		if r.AdGroupID != "" && r.AdGroupName != "" && r.CampaignName != "" {
			adGroupIDs[r.CampaignName+"|"+r.AdGroupName] = r.AdGroupID
		}
	}

	rows := CpcRows(analysis.CpcRecommendations)

	if cfg.Campaigns == nil || cfg.Campaigns.Asin == nil || !cfg.Campaigns.Asin.Enabled || len(cfg.Campaigns.Asin.Targets) == 0 {
		return rows, warnings
	}

	asin := cfg.Campaigns.Asin
	campaignName := FormatCampaignName(cfg, domain.CampaignKindAsin)
	adGroupName := FormatAdGroupName(cfg, domain.CampaignKindAsin)
	campaignID, found := campaignIDs[campaignName]
	if !found {
		warnings = append(warnings, fmt.Sprintf("Campaign not found in SC data: %s", campaignName))
	}

	for _, target := range asin.Targets {
		expr := asinExpression(target.ASIN)
		if !hasProductTarget(analysis.Records, campaignName, adGroupName, expr) {
			warnings = append(warnings, fmt.Sprintf("Product targeting not found in SC data: %s in %s/%s", expr, campaignName, adGroupName))
			continue
		}

		row := domain.NewBulkRow()
		row.Entity = EntityProductTargeting
		row.Operation = OperationUpdateLower
		row.CampaignName = campaignName
		row.CampaignID = campaignID
		row.AdGroupName = adGroupName
		row.AdGroupID = adGroupIDs[campaignName+"|"+adGroupName]
		row.ProductTargetingExpression = expr
		row.Bid = formatBidPtr(target.Bid, asin.DefaultBid)
		row.State = domain.StateEnabled
		rows = append(rows, row)
	}
	return rows, warnings
}

func hasProductTarget(records []domain.NormalizedRecord, campaignName, adGroupName, expr string) bool {
	for _, r := range records {
		if r.CampaignName == campaignName && r.AdGroupName == adGroupName && r.ProductTargetingExpression == expr {
			return true
		}
	}
	return false
}

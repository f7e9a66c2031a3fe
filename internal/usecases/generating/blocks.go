package generating

import (
	"regexp"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/spine"
)

var autoSegmentPattern = regexp.MustCompile(`(?i)[_\s]?auto[_\s]?`)

// BudgetRows gera uma atualização de orçamento diário por campanha da estratégia que existe
// nos registros. O primeiro registro de cada campanha define o ID e o portfólio.
func BudgetRows(records []domain.NormalizedRecord, strategy *domain.StrategyData) []domain.BulkOutputRow {
	if strategy == nil || len(strategy.Budgets) == 0 {
		return nil
	}

	type campaignInfo struct{ id, portfolio string }
	campaigns := make(map[string]campaignInfo)
	for _, r := range records {
		if r.CampaignName == "" {
			continue
		}
		if _, ok := campaigns[r.CampaignName]; !ok {
			campaigns[r.CampaignName] = campaignInfo{id: r.CampaignID, portfolio: r.PortfolioID}
		}
	}

	var rows []domain.BulkOutputRow
	for _, b := range strategy.Budgets {
		info, ok := campaigns[b.CampaignName]
		if !ok {
			continue
		}
		row := domain.NewBulkRow()
		row.Entity = EntityCampaign
		row.Operation = OperationUpdate
		row.CampaignName = b.CampaignName
		row.CampaignID = info.id
		row.PortfolioID = info.portfolio
		row.DailyBudget = formatRounded(b.DailyBudget)
		rows = append(rows, row)
	}
	return rows
}

// CpcRows gera uma atualização de lance por recomendação
func CpcRows(recs []domain.CpcRecommendation) []domain.BulkOutputRow {
	rows := make([]domain.BulkOutputRow, 0, len(recs))
	for _, rec := range recs {
		row := domain.NewBulkRow()
		row.Entity = EntityKeyword
		row.Operation = OperationUpdate
		row.CampaignName = rec.CampaignName
		row.CampaignID = rec.CampaignID
		row.AdGroupName = rec.AdGroupName
		row.AdGroupID = rec.AdGroupID
		row.KeywordText = rec.KeywordText
		row.MatchType = rec.MatchType
		row.Bid = formatBid(rec.RecommendedBid)
		row.KeywordID = rec.KeywordID
		row.State = domain.StateEnabled
		rows = append(rows, row)
	}
	return rows
}

// ManualCampaignName deriva o nome da campanha manual de destino a partir da campanha automática
func ManualCampaignName(autoCampaignName string) string {
	loc := autoSegmentPattern.FindStringIndex(autoCampaignName)
	if loc == nil {
		return autoCampaignName
	}
	return autoCampaignName[:loc[0]] + "_Manual_" + autoCampaignName[loc[1]:]
}

// PromotionRows cria as palavras-chave promovidas na campanha manual correspondente,
// resolvendo os IDs pelo índice. IDs não resolvidos ficam em branco.
func PromotionRows(candidates []domain.PromotionCandidate, idx *spine.IdSpine) []domain.BulkOutputRow {
	rows := make([]domain.BulkOutputRow, 0, len(candidates))
	for _, c := range candidates {
		campaignName := ManualCampaignName(c.CampaignName)

		row := domain.NewBulkRow()
		row.Entity = EntityKeyword
		row.Operation = OperationCreate
		row.CampaignName = campaignName
		row.CampaignID = idx.LookupCampaignID(campaignName)
		row.AdGroupName = c.RecommendedAdGroupName
		row.AdGroupID = idx.LookupAdGroupID(campaignName, c.RecommendedAdGroupName)
		row.KeywordText = c.KeywordText
		row.MatchType = c.MatchType
		row.Bid = formatBid(c.RecommendedBid)
		row.State = domain.StateEnabled
		rows = append(rows, row)
	}
	return rows
}

// NegativeSyncRows negativa na campanha automática de origem cada termo promovido
func NegativeSyncRows(candidates []domain.PromotionCandidate) []domain.BulkOutputRow {
	rows := make([]domain.BulkOutputRow, 0, len(candidates))
	for _, c := range candidates {
		row := domain.NewBulkRow()
		row.Entity = EntityNegativeKeyword
		row.Operation = OperationCreate
		row.CampaignName = c.CampaignName
		row.CampaignID = c.CampaignID
		row.AdGroupName = c.AdGroupName
		row.AdGroupID = c.AdGroupID
		row.KeywordText = c.KeywordText
		row.MatchType = domain.MatchNegativeExact
		row.State = domain.StateEnabled
		rows = append(rows, row)
	}
	return rows
}

// NegativeRows cria as palavras-chave negativas dos candidatos de alto ACOS
func NegativeRows(candidates []domain.NegativeCandidate) []domain.BulkOutputRow {
	rows := make([]domain.BulkOutputRow, 0, len(candidates))
	for _, c := range candidates {
		row := domain.NewBulkRow()
		row.Entity = EntityNegativeKeyword
		row.Operation = OperationCreate
		row.CampaignName = c.CampaignName
		row.CampaignID = c.CampaignID
		row.AdGroupName = c.AdGroupName
		row.AdGroupID = c.AdGroupID
		row.KeywordText = c.KeywordText
		row.MatchType = NegativeMatchType(c.MatchType)
		row.State = domain.StateEnabled
		rows = append(rows, row)
	}
	return rows
}

// PlacementRows gera os ajustes de lance por posicionamento. Recomendações com percentual
// zero ou negativo não geram linha.
func PlacementRows(recs []domain.PlacementRecommendation) []domain.BulkOutputRow {
	var rows []domain.BulkOutputRow
	for _, rec := range recs {
		if rec.RecommendedPercentage <= 0 {
			continue
		}
		pct := domain.FormatNumber(rec.RecommendedPercentage)

		row := domain.NewBulkRow()
		row.Entity = EntityBiddingAdjustment
		row.Operation = OperationUpdate
		row.CampaignName = rec.CampaignName
		row.CampaignID = rec.CampaignID
		row.Percentage = pct
		switch rec.PlacementType {
		case domain.PlacementTopOfSearch:
			row.PlacementTopOfSearch = pct
		case domain.PlacementProductPages:
			row.PlacementProductPages = pct
		default:
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

package generating

import (
	"github.com/yuuki-courage/aads/internal/domain"
)

// ActionItemRows converte as ações manuais em linhas, uma por ação, na ordem recebida.
// Ações de tipo desconhecido são ignoradas; o carregador já as rejeita.
func ActionItemRows(actions []domain.ActionItem) []domain.BulkOutputRow {
	rows := make([]domain.BulkOutputRow, 0, len(actions))
	for _, a := range actions {
		row, ok := actionRow(a)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func actionRow(a domain.ActionItem) (domain.BulkOutputRow, bool) {
	row := domain.NewBulkRow()
	row.CampaignName = a.CampaignName
	row.CampaignID = a.CampaignID

	switch a.Type {
	case domain.ActionNegativeKeyword:
		row.Entity = EntityCampaignNegativeKeyword
		if a.AdGroupID != "" {
			row.Entity = EntityNegativeKeyword
		}
		row.Operation = OperationCreateLower
		row.AdGroupName = a.AdGroupName
		row.AdGroupID = a.AdGroupID
		row.KeywordText = a.KeywordText
		row.MatchType = domain.MatchNegativeExact
		if a.MatchType != "" {
			row.MatchType = NegativeMatchType(normalizedMatchType(a.MatchType))
		}
		row.State = domain.StateEnabled

	case domain.ActionNegativeProductTargeting:
		row.Entity = EntityNegativeProductTargeting
		row.Operation = OperationCreateLower
		row.AdGroupName = a.AdGroupName
		row.AdGroupID = a.AdGroupID
		if a.ASIN != "" {
			row.ProductTargetingExpression = asinExpression(a.ASIN)
		}
		row.State = domain.StateEnabled

	case domain.ActionKeyword:
		row.Entity = EntityKeyword
		row.Operation = OperationCreateLower
		row.AdGroupName = a.AdGroupName
		row.AdGroupID = a.AdGroupID
		row.KeywordText = a.KeywordText
		row.MatchType = normalizedMatchType(a.MatchType)
		if a.Bid != nil {
			row.Bid = formatBid(*a.Bid)
		}
		row.State = domain.StateEnabled

	case domain.ActionPlacement:
		row.Entity = EntityCampaign
		row.Operation = OperationUpdateLower
		pct := formatBidPtr(a.Percentage, 0)
		switch a.Placement {
		case domain.PlacementTopOfSearch:
			row.PlacementTopOfSearch = pct
		case domain.PlacementProductPages:
			row.PlacementProductPages = pct
		}

	default:
		return domain.BulkOutputRow{}, false
	}
	return row, true
}

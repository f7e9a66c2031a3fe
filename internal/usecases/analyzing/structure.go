package analyzing

import (
	"sort"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/normalizing"
)

const unknownAdGroupKey = "__unknown__"

type structureAccumulator struct {
	node    domain.CampaignStructureNode
	groups  map[string]*domain.AdGroupNode
	ordered []string
}

// BuildStructure conta palavras-chave e alvos por grupo de anúncios. Campanhas em ordem
// alfabética e grupos por gasto decrescente.
func BuildStructure(records []domain.NormalizedRecord) []domain.CampaignStructureNode {
	byKey := make(map[string]*structureAccumulator)
	var order []string

	for _, r := range records {
		key := r.CampaignKey()
		if key == "" {
			continue
		}

		acc, ok := byKey[key]
		if !ok {
			acc = &structureAccumulator{
				node:   domain.CampaignStructureNode{CampaignID: r.CampaignID, CampaignName: r.CampaignName},
				groups: make(map[string]*domain.AdGroupNode),
			}
			byKey[key] = acc
			order = append(order, key)
		}

		groupKey := r.AdGroupID
		if groupKey == "" {
			groupKey = r.AdGroupName
		}
		if groupKey == "" {
			groupKey = unknownAdGroupKey
		}

		group, ok := acc.groups[groupKey]
		if !ok {
			group = &domain.AdGroupNode{AdGroupID: r.AdGroupID, AdGroupName: r.AdGroupName}
			acc.groups[groupKey] = group
			acc.ordered = append(acc.ordered, groupKey)
		}

		if r.KeywordText != "" {
			group.KeywordCount++
		}
		if r.ProductTargetingExpression != "" {
			group.ProductTargetCount++
		}
		group.Spend += r.Spend
		group.Sales += r.Sales
	}

	result := make([]domain.CampaignStructureNode, 0, len(order))
	for _, key := range order {
		acc := byKey[key]
		node := acc.node
		node.AdGroups = make([]domain.AdGroupNode, 0, len(acc.ordered))
		for _, gk := range acc.ordered {
			g := *acc.groups[gk]
			g.ACOS = normalizing.SafeDivide(g.Spend, g.Sales)
			node.AdGroups = append(node.AdGroups, g)
		}
		sort.SliceStable(node.AdGroups, func(i, j int) bool {
			return node.AdGroups[i].Spend > node.AdGroups[j].Spend
		})
		result = append(result, node)
	}

	c := newCollator()
	sort.SliceStable(result, func(i, j int) bool {
		return c.CompareString(result[i].CampaignName, result[j].CampaignName) < 0
	})
	return result
}

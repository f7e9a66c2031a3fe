package analyzing

import (
	"fmt"
	"sort"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/normalizing"
)

type skuAggregate struct {
	clicks, spend, sales, orders float64
}

func classifySku(sku string, agg skuAggregate, rules SkuRules) domain.SkuClassification {
	cvr := normalizing.SafeDivide(agg.orders, agg.clicks)
	acos := normalizing.SafeDivide(agg.spend, agg.sales)

	out := func(label domain.SkuLabel, bid, budget float64, reason string) domain.SkuClassification {
		return domain.SkuClassification{SKU: sku, Label: label, BidAdjust: bid, BudgetAdjust: budget, Reason: reason}
	}

	switch {
	case agg.clicks < rules.MinClicks:
		return out(domain.SkuImprove, rules.Improve.BidAdjust, rules.Improve.BudgetAdjust, fmt.Sprintf("data-insufficient(clicks<%s)", domain.FormatNumber(rules.MinClicks)))
	case acos <= rules.Focus.MaxAcos && cvr >= rules.Focus.MinCvr:
		return out(domain.SkuFocus, rules.Focus.BidAdjust, rules.Focus.BudgetAdjust, "high-performance")
	case acos <= rules.Nurture.MaxAcos && cvr >= rules.Nurture.MinCvr:
		return out(domain.SkuNurture, rules.Nurture.BidAdjust, rules.Nurture.BudgetAdjust, "stable-growth")
	case acos > rules.Prune.MinAcos || cvr < rules.Prune.MaxCvr:
		return out(domain.SkuPrune, rules.Prune.BidAdjust, rules.Prune.BudgetAdjust, "low-efficiency")
	default:
		return out(domain.SkuImprove, rules.Improve.BidAdjust, rules.Improve.BudgetAdjust, "default")
	}
}

// ClassifySkus rotula cada SKU pela primeira regra satisfeita, em ordem alfabética de SKU
func ClassifySkus(records []domain.NormalizedRecord, rules SkuRules) []domain.SkuClassification {
	bySku := make(map[string]*skuAggregate)
	var order []string
	for _, r := range records {
		if r.SKU == "" {
			continue
		}
		agg, ok := bySku[r.SKU]
		if !ok {
			agg = &skuAggregate{}
			bySku[r.SKU] = agg
			order = append(order, r.SKU)
		}
		agg.clicks += r.Clicks
		agg.spend += r.Spend
		agg.sales += r.Sales
		agg.orders += r.Orders
	}

	result := make([]domain.SkuClassification, 0, len(order))
	for _, sku := range order {
		result = append(result, classifySku(sku, *bySku[sku], rules))
	}

	c := newCollator()
	sort.SliceStable(result, func(i, j int) bool {
		return c.CompareString(result[i].SKU, result[j].SKU) < 0
	})
	return result
}

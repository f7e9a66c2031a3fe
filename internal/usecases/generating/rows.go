// Package generating converte os resultados analíticos em linhas da planilha de alterações
// e mescla as linhas de todas as etapas em um único conjunto.
package generating

import (
	"strings"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/normalizing"
	"github.com/yuuki-courage/aads/pkg/utils"
)

// Entidades da planilha
const (
	EntityCampaign                 = "Campaign"
	EntityAdGroup                  = "Ad Group"
	EntityProductAd                = "Product Ad"
	EntityKeyword                  = "Keyword"
	EntityNegativeKeyword          = "Negative Keyword"
	EntityCampaignNegativeKeyword  = "Campaign Negative Keyword"
	EntityProductTargeting         = "Product Targeting"
	EntityNegativeProductTargeting = "Negative Product Targeting"
	EntityBiddingAdjustment        = "Bidding Adjustment"
)

// Operações. As etapas do pipeline usam a forma capitalizada; ações e templates, a minúscula.
const (
	OperationCreate      = "Create"
	OperationUpdate      = "Update"
	OperationCreateLower = "create"
	OperationUpdateLower = "update"
)

const negativePrefix = "negative"

// NegativeMatchType prefixa o tipo de correspondência com "negative " quando necessário
func NegativeMatchType(matchType string) string {
	if strings.HasPrefix(matchType, negativePrefix) {
		return matchType
	}
	return negativePrefix + " " + matchType
}

func formatBid(v float64) string {
	return domain.FormatNumber(v)
}

func formatRounded(v float64) string {
	return domain.FormatNumber(utils.RoundHalfUp(v))
}

func formatBidPtr(v *float64, fallback float64) string {
	if v == nil {
		return formatBid(fallback)
	}
	return formatBid(*v)
}

func asinExpression(asin string) string {
	return `asin="` + asin + `"`
}

func normalizedMatchType(matchType string) string {
	return normalizing.NormalizeMatchType(matchType)
}

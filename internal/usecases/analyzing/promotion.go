package analyzing

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/yuuki-courage/aads/internal/domain"
	"github.com/yuuki-courage/aads/internal/usecases/normalizing"
	"github.com/yuuki-courage/aads/pkg/utils"
)

const (
	promotionBidMarkup = 1.05
	defaultAdGroupBase = "adgroup"
)

var (
	autoTargetingPattern = regexp.MustCompile(`(?i)auto`)
	whitespaceRun        = regexp.MustCompile(`\s+`)
)

// RecommendedAdGroupName monta o nome do grupo manual de destino de um termo promovido
func RecommendedAdGroupName(adGroupName, matchType string) string {
	suffix := "manual-phrase"
	if strings.Contains(normalizing.NormalizeMatchType(matchType), "exact") {
		suffix = "manual-exact"
	}
	base := adGroupName
	if base == "" {
		base = defaultAdGroupBase
	}
	return whitespaceRun.ReplaceAllString(base+"-"+suffix, "-")
}

// ClassifyPromotions separa, entre os termos de busca de campanhas automáticas, os candidatos
// a promoção para segmentação manual e os candidatos a negativação.
func ClassifyPromotions(records []domain.NormalizedRecord, opts PromotionOptions) ([]domain.PromotionCandidate, []domain.NegativeCandidate) {
	var promotions []domain.PromotionCandidate
	var negatives []domain.NegativeCandidate

	for _, r := range records {
		if !autoTargetingPattern.MatchString(r.TargetingType) {
			continue
		}
		term := r.CustomerSearchTerm
		if term == "" {
			continue
		}

		cvr := normalizing.SafeDivide(r.Orders, r.Clicks)
		acos := normalizing.SafeDivide(r.Spend, r.Sales)
		avgCpc := normalizing.SafeDivide(r.Spend, r.Clicks)
		enoughClicks := r.Clicks >= opts.MinClicks

		if enoughClicks && (r.Orders > 0 || cvr >= opts.MinCvr) {
			matchType := r.MatchType
			if matchType == "" {
				matchType = domain.MatchExact
			}
			promotions = append(promotions, domain.PromotionCandidate{
				CampaignID:             r.CampaignID,
				CampaignName:           r.CampaignName,
				AdGroupID:              r.AdGroupID,
				AdGroupName:            r.AdGroupName,
				KeywordText:            term,
				MatchType:              normalizing.NormalizeMatchType(matchType),
				SKU:                    r.SKU,
				Clicks:                 r.Clicks,
				Spend:                  r.Spend,
				Orders:                 r.Orders,
				CVR:                    cvr,
				AvgCpc:                 avgCpc,
				RecommendedBid:         math.Max(1, utils.RoundHalfUp(r.Bid.Or(avgCpc)*promotionBidMarkup)),
				RecommendedAdGroupName: RecommendedAdGroupName(r.AdGroupName, r.MatchType),
			})
		}

		if enoughClicks && r.Orders == 0 && acos >= opts.NegativeAcosThreshold {
			negatives = append(negatives, domain.NegativeCandidate{
				CampaignID:   r.CampaignID,
				CampaignName: r.CampaignName,
				AdGroupID:    r.AdGroupID,
				AdGroupName:  r.AdGroupName,
				KeywordText:  term,
				MatchType:    domain.MatchNegativePhrase,
				Reason:       fmt.Sprintf("high_acos(%.2f)", acos),
			})
		}
	}

	sort.SliceStable(promotions, func(i, j int) bool {
		return promotions[i].Clicks > promotions[j].Clicks
	})
	c := newCollator()
	sort.SliceStable(negatives, func(i, j int) bool {
		return c.CompareString(negatives[i].KeywordText, negatives[j].KeywordText) > 0
	})
	return promotions, negatives
}

// Package spine indexa os IDs de plataforma por nome normalizado para que os geradores
// resolvam campanhas, grupos e palavras-chave a partir de nomes.
package spine

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/yuuki-courage/aads/internal/domain"
)

var (
	parentheticalPattern = regexp.MustCompile(`[（(].*?[)）]`)
	separatorPattern     = regexp.MustCompile(`[＿_‐\-ー]`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// Entry é a identidade completa de uma linha de performance
type Entry struct {
	CampaignID   string
	CampaignName string
	AdGroupID    string
	AdGroupName  string
	KeywordID    string
	KeywordText  string
	MatchType    string
}

// IdSpine é o índice de IDs construído uma única vez a partir de todos os registros
type IdSpine struct {
	byCampaign map[string]Entry
	byAdGroup  map[string]Entry
	byKeyword  map[string]Entry
}

// NormalizeCampaignKey aplica NFKC, remove anotações entre parênteses, separadores e espaços
// e converte para maiúsculas. "Camp_A", "CAMP A" e "Camp (nota) A" geram a mesma chave.
func NormalizeCampaignKey(name string) string {
	s := norm.NFKC.String(name)
	s = parentheticalPattern.ReplaceAllString(s, "")
	s = separatorPattern.ReplaceAllString(s, "")
	s = whitespacePattern.ReplaceAllString(s, "")
	return strings.ToUpper(s)
}

func adGroupKey(campaignName, adGroupName string) string {
	return NormalizeCampaignKey(campaignName) + "|" + NormalizeCampaignKey(adGroupName)
}

func keywordKey(campaignName, adGroupName, keyword, matchType string) string {
	return adGroupKey(campaignName, adGroupName) + "|" + strings.ToLower(strings.TrimSpace(keyword)) + "|" + matchType
}

// Build indexa os registros. Em chaves repetidas o último registro prevalece.
func Build(records []domain.NormalizedRecord) *IdSpine {
	s := &IdSpine{
		byCampaign: make(map[string]Entry),
		byAdGroup:  make(map[string]Entry),
		byKeyword:  make(map[string]Entry),
	}

	for _, r := range records {
		entry := Entry{
			CampaignID:   r.CampaignID,
			CampaignName: r.CampaignName,
			AdGroupID:    r.AdGroupID,
			AdGroupName:  r.AdGroupName,
			KeywordID:    r.KeywordID,
			KeywordText:  r.KeywordText,
			MatchType:    r.MatchType,
		}

		if key := NormalizeCampaignKey(r.CampaignName); key != "" && r.CampaignID != "" {
			s.byCampaign[key] = entry
		}
		if r.AdGroupID != "" {
			s.byAdGroup[adGroupKey(r.CampaignName, r.AdGroupName)] = entry
		}
		if r.KeywordText != "" {
			s.byKeyword[keywordKey(r.CampaignName, r.AdGroupName, r.KeywordText, r.MatchType)] = entry
		}
	}
	return s
}

// Len retorna a quantidade de campanhas, grupos e palavras-chave indexados
func (s *IdSpine) Len() (campaigns, adGroups, keywords int) {
	if s == nil {
		return 0, 0, 0
	}
	return len(s.byCampaign), len(s.byAdGroup), len(s.byKeyword)
}

// LookupCampaignID retorna o ID da campanha ou vazio quando não resolvido
func (s *IdSpine) LookupCampaignID(campaignName string) string {
	if s == nil {
		return ""
	}
	return s.byCampaign[NormalizeCampaignKey(campaignName)].CampaignID
}

// LookupAdGroupID retorna o ID do grupo de anúncios ou vazio quando não resolvido
func (s *IdSpine) LookupAdGroupID(campaignName, adGroupName string) string {
	if s == nil {
		return ""
	}
	return s.byAdGroup[adGroupKey(campaignName, adGroupName)].AdGroupID
}

// LookupKeywordID retorna o ID da palavra-chave ou vazio quando não resolvido
func (s *IdSpine) LookupKeywordID(campaignName, adGroupName, keyword, matchType string) string {
	if s == nil {
		return ""
	}
	return s.byKeyword[keywordKey(campaignName, adGroupName, keyword, matchType)].KeywordID
}

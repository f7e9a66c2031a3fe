package spine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yuuki-courage/aads/internal/domain"
)

func TestNormalizeCampaignKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Sublinhado", input: "Camp_A", want: "CAMPA"},
		{name: "Espaço e maiúsculas", input: "CAMP A", want: "CAMPA"},
		{name: "Anotação entre parênteses", input: "Camp (nota) A", want: "CAMPA"},
		{name: "Parênteses de largura total", input: "Camp（メモ）A", want: "CAMPA"},
		{name: "Largura total", input: "ＣＡＭＰ－Ａ", want: "CAMPA"},
		{name: "Traço longo japonês", input: "キャンペーン", want: "キャンペン"},
		{name: "Vazio", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCampaignKey(tt.input))
		})
	}
}

func TestIdSpine_Lookups(t *testing.T) {
	records := []domain.NormalizedRecord{
		{CampaignID: "c1", CampaignName: "Camp_A", AdGroupID: "g1", AdGroupName: "Group 1", KeywordID: "k1", KeywordText: "Shoes ", MatchType: "exact"},
		{CampaignName: "Sem ID", AdGroupName: "G"},
		{CampaignID: "c2", CampaignName: "Camp B", KeywordText: "boots", MatchType: "phrase"},
	}

	s := Build(records)

	assert.Equal(t, "c1", s.LookupCampaignID("CAMP A"))
	assert.Equal(t, "c1", s.LookupCampaignID("Camp (nota) A"))
	assert.Equal(t, "", s.LookupCampaignID("Sem ID"))
	assert.Equal(t, "", s.LookupCampaignID("Desconhecida"))

	assert.Equal(t, "g1", s.LookupAdGroupID("camp a", "GROUP_1"))
	assert.Equal(t, "", s.LookupAdGroupID("Camp B", ""))

	assert.Equal(t, "k1", s.LookupKeywordID("Camp A", "Group 1", "shoes", "exact"))
	assert.Equal(t, "", s.LookupKeywordID("Camp A", "Group 1", "shoes", "phrase"))
	assert.Equal(t, "", s.LookupKeywordID("Camp B", "", "boots", "phrase"))

	campaigns, adGroups, keywords := s.Len()
	assert.Equal(t, 2, campaigns)
	assert.Equal(t, 1, adGroups)
	assert.Equal(t, 2, keywords)
}

func TestIdSpine_Nil(t *testing.T) {
	var s *IdSpine
	assert.Equal(t, "", s.LookupCampaignID("x"))
	assert.Equal(t, "", s.LookupAdGroupID("x", "y"))
	assert.Equal(t, "", s.LookupKeywordID("x", "y", "z", "exact"))
}

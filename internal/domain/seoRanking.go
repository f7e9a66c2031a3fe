package domain

// KeywordRankingInfo é a posição mais recente de um ASIN para uma palavra-chave rastreada
type KeywordRankingInfo struct {
	Keyword           string `json:"keyword"`
	ASIN              string `json:"asin"`
	OrganicPosition   *int   `json:"organic_position"`   // is_sponsored = 0
	SponsoredPosition *int   `json:"sponsored_position"` // is_sponsored = 1
	SnapshotTimestamp string `json:"snapshot_timestamp"`
	Found             bool   `json:"found"`
}

// SeoRankingData agrupa os rankings indexados pela palavra-chave normalizada do anúncio
type SeoRankingData struct {
	Rankings     map[string][]KeywordRankingInfo `json:"rankings"`
	DBPath       string                          `json:"db_path"`
	SnapshotDate string                          `json:"snapshot_date"`
}

// MatchedKeywords retorna a quantidade de palavras-chave com ranking
func (d *SeoRankingData) MatchedKeywords() int {
	if d == nil {
		return 0
	}
	return len(d.Rankings)
}

// KeywordMapping associa manualmente uma palavra-chave de anúncio a uma palavra rastreada
type KeywordMapping struct {
	AdKeyword      string `json:"adKeyword" yaml:"adKeyword"`
	RankingKeyword string `json:"rankingKeyword" yaml:"rankingKeyword"`
}

type MatchSource string

const (
	MatchSourceExact      MatchSource = "exact"
	MatchSourceNormalized MatchSource = "normalized"
	MatchSourceMapping    MatchSource = "mapping"
)

type KeywordMatchResult struct {
	AdKeyword      string      `json:"ad_keyword"`
	RankingKeyword string      `json:"ranking_keyword"`
	NormalizedKey  string      `json:"normalized_key"`
	Source         MatchSource `json:"source"`
}

// SeoConfig controla o ajuste de lances pela posição orgânica
type SeoConfig struct {
	Enabled    bool
	Factors    map[int]float64
	CpcCeiling float64
}

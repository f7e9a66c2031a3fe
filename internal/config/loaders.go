package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/yuuki-courage/aads/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ValidationError reúne todos os problemas encontrados em um documento de configuração
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "configuração inválida: " + strings.Join(e.Errors, "; ")
}

func (e *ValidationError) add(format string, args ...any) {
	e.Errors = append(e.Errors, fmt.Sprintf(format, args...))
}

func (e *ValidationError) orNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// DecodeDocument interpreta JSON ou YAML conforme a extensão (.yaml/.yml usam YAML)
func DecodeDocument(data []byte, ext string, out any) error {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return errors.Wrap(err, "falha ao decodificar YAML")
		}
		// Reaproveita as tags json dos tipos de domínio
		return remarshal(doc, out)
	default:
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrap(err, "falha ao decodificar JSON")
		}
		return nil
	}
}

func readDocument(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "falha ao ler %s", path)
	}
	if err := DecodeDocument(data, filepath.Ext(path), out); err != nil {
		return errors.Wrapf(err, "arquivo %s", path)
	}
	return nil
}

func remarshal(in any, out any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return errors.Wrap(err, "falha ao serializar documento")
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "documento com tipos inválidos")
	}
	return nil
}

// LoadLayerPolicy carrega a política de camadas. Com path vazio usa o caminho padrão,
// e a ausência do arquivo padrão significa "sem política" (nil, nil). Um path informado,
// mesmo igual ao padrão, precisa existir.
func LoadLayerPolicy(path string) (*domain.CampaignLayerPolicy, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultLayerPolicyPath
	}

	var doc map[string]any
	if err := readDocument(path, &doc); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return ParseLayerPolicy(doc)
}

// ParseLayerPolicy valida o documento bruto e o converte para o tipo de domínio
func ParseLayerPolicy(doc map[string]any) (*domain.CampaignLayerPolicy, error) {
	if err := validateLayerPolicy(doc); err != nil {
		return nil, err
	}
	var policy domain.CampaignLayerPolicy
	if err := remarshal(doc, &policy); err != nil {
		return nil, errors.Wrap(err, "campaign-layer-policy")
	}
	return &policy, nil
}

func validateLayerPolicy(doc map[string]any) error {
	if v, ok := doc["version"].(string); !ok || v == "" {
		return errors.New("campaign-layer-policy: missing or invalid 'version'")
	}
	layers, ok := doc["layers"].(map[string]any)
	if !ok {
		return errors.New("campaign-layer-policy: missing or invalid 'layers'")
	}
	for _, id := range domain.LayerOrder {
		def, ok := layers[string(id)].(map[string]any)
		if !ok {
			return fmt.Errorf("campaign-layer-policy: missing layer definition for '%s'", id)
		}
		if !nonEmptyString(def["name"]) || !nonEmptyString(def["nameJa"]) || !nonEmptyString(def["campaignPrefix"]) {
			return fmt.Errorf("campaign-layer-policy: incomplete layer definition for '%s'", id)
		}
	}
	patterns, ok := doc["namingPatterns"].([]any)
	if !ok {
		return errors.New("campaign-layer-policy: 'namingPatterns' must be an array")
	}
	for _, p := range patterns {
		np, _ := p.(map[string]any)
		layer, _ := np["layer"].(string)
		if !nonEmptyString(np["pattern"]) || !domain.IsValidLayerID(domain.LayerID(layer)) {
			encoded, _ := json.MarshalToString(p)
			return fmt.Errorf("campaign-layer-policy: invalid naming pattern: %s", encoded)
		}
	}
	if _, ok := doc["fallbackClassification"].(map[string]any); !ok {
		return errors.New("campaign-layer-policy: missing 'fallbackClassification'")
	}
	if _, ok := doc["promotionRules"].([]any); !ok {
		return errors.New("campaign-layer-policy: 'promotionRules' must be an array")
	}
	return nil
}

// LoadCampaignTemplate lê, valida e converte o template de campanhas
func LoadCampaignTemplate(path string) (*domain.CampaignTemplateConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler %s", path)
	}
	return ParseCampaignTemplate(data, filepath.Ext(path))
}

// ParseCampaignTemplate decodifica um template já em memória (corpo de requisição ou arquivo)
func ParseCampaignTemplate(data []byte, ext string) (*domain.CampaignTemplateConfig, error) {
	var doc any
	if err := DecodeDocument(data, ext, &doc); err != nil {
		return nil, err
	}
	if err := ValidateCampaignTemplate(doc); err != nil {
		return nil, err
	}
	var cfg domain.CampaignTemplateConfig
	if err := remarshal(doc, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateCampaignTemplate verifica o documento bruto e devolve *ValidationError com todos os problemas
func ValidateCampaignTemplate(doc any) error {
	c, ok := doc.(map[string]any)
	if !ok {
		return &ValidationError{Errors: []string{"Config must be an object"}}
	}

	verr := &ValidationError{}
	for _, field := range []string{"brandName", "brandCode", "dateSuffix"} {
		if s, ok := c[field].(string); !ok || strings.TrimSpace(s) == "" {
			verr.add("%s is required and must be a non-empty string", field)
		}
	}
	if skus, ok := c["skus"].([]any); !ok || len(skus) == 0 {
		verr.add("skus must be a non-empty array")
	}
	campaigns, ok := c["campaigns"].(map[string]any)
	if !ok {
		verr.add("campaigns is required and must be an object")
	} else if !hasEnabledCampaign(campaigns) {
		verr.add("At least one campaign type must be enabled or manual campaigns defined")
	}
	return verr.orNil()
}

func hasEnabledCampaign(campaigns map[string]any) bool {
	for _, kind := range []string{domain.CampaignKindAuto, domain.CampaignKindPhrase, domain.CampaignKindBroad, domain.CampaignKindAsin} {
		if spec, ok := campaigns[kind].(map[string]any); ok {
			if enabled, _ := spec["enabled"].(bool); enabled {
				return true
			}
		}
	}
	manual, ok := campaigns[domain.CampaignKindManual].([]any)
	return ok && len(manual) > 0
}

// LoadActionItems lê a lista de ações avulsas e rejeita tipos desconhecidos
func LoadActionItems(path string) (*domain.ActionItemsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "falha ao ler %s", path)
	}
	return ParseActionItems(data, filepath.Ext(path))
}

func ParseActionItems(data []byte, ext string) (*domain.ActionItemsConfig, error) {
	var doc map[string]any
	if err := DecodeDocument(data, ext, &doc); err != nil {
		return nil, err
	}
	if _, ok := doc["actions"].([]any); !ok {
		return nil, &ValidationError{Errors: []string{"Invalid config: 'actions' must be an array"}}
	}

	var cfg domain.ActionItemsConfig
	if err := remarshal(doc, &cfg); err != nil {
		return nil, err
	}

	verr := &ValidationError{}
	for i, action := range cfg.Actions {
		if !action.Type.IsValid() {
			verr.add("actions[%d]: unknown type '%s'", i, action.Type)
		}
	}
	if err := verr.orNil(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadStrategy lê as metas de orçamento por campanha
func LoadStrategy(path string) (*domain.StrategyData, error) {
	var strategy domain.StrategyData
	if err := readDocument(path, &strategy); err != nil {
		return nil, err
	}
	if err := ValidateStrategy(&strategy); err != nil {
		return nil, err
	}
	return &strategy, nil
}

// ValidateStrategy exige nome de campanha e orçamento positivo em cada meta
func ValidateStrategy(strategy *domain.StrategyData) error {
	if strategy == nil {
		return nil
	}
	verr := &ValidationError{}
	for i, b := range strategy.Budgets {
		if strings.TrimSpace(b.CampaignName) == "" {
			verr.add("budgets[%d]: campaignName is required", i)
		}
		if b.DailyBudget <= 0 {
			verr.add("budgets[%d]: dailyBudget must be positive", i)
		}
	}
	return verr.orNil()
}

// LoadKeywordMappings aceita uma lista de mapeamentos ou um objeto {"mappings": [...]}
func LoadKeywordMappings(path string) ([]domain.KeywordMapping, error) {
	var doc any
	if err := readDocument(path, &doc); err != nil {
		return nil, err
	}
	if obj, ok := doc.(map[string]any); ok {
		doc = obj["mappings"]
	}
	if _, ok := doc.([]any); !ok {
		return nil, &ValidationError{Errors: []string{"keyword mappings must be an array"}}
	}

	var mappings []domain.KeywordMapping
	if err := remarshal(doc, &mappings); err != nil {
		return nil, err
	}
	out := mappings[:0]
	for _, m := range mappings {
		if strings.TrimSpace(m.AdKeyword) == "" || strings.TrimSpace(m.RankingKeyword) == "" {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func nonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

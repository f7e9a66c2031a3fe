// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/yuuki-courage/aads/infrastructure/database"
	"github.com/yuuki-courage/aads/internal/config"
	"github.com/yuuki-courage/aads/internal/domain"
)

const (
	rankingHistoryTable  = "ranking_history"
	keywordsTable        = "keywords"
	productsTable        = "products"
	searchSnapshotsTable = "search_result_snapshots"
	organicFlag          = 0
	sponsoredFlag        = 1
)

// RankingRepository é a consulta somente leitura ao banco de posições de busca
type RankingRepository interface {
	GetTrackedKeywords(ctx context.Context) ([]string, error)
	GetTrackedAsins(ctx context.Context) ([]string, error)
	GetLatestSnapshotDate(ctx context.Context) (string, error)
	GetLatestRanking(ctx context.Context, keyword, asin string) (*domain.KeywordRankingInfo, error)
	Close() error
}

// RankingOpener abre o repositório de ranking sob demanda, uma vez por execução
type RankingOpener interface {
	Available(target string) bool
	Open(ctx context.Context, target string) (RankingRepository, error)
}

type rankingRepository struct {
	conn    *database.Connection
	builder squirrel.StatementBuilderType
}

func NewRankingRepository(conn *database.Connection) RankingRepository {
	return &rankingRepository{
		conn:    conn,
		builder: statementBuilder(conn.Driver),
	}
}

// statementBuilder usa $n no postgres e ? no sqlite
func statementBuilder(driver string) squirrel.StatementBuilderType {
	var format squirrel.PlaceholderFormat = squirrel.Question
	if driver == config.DriverPostgres {
		format = squirrel.Dollar
	}
	return squirrel.StatementBuilder.PlaceholderFormat(format)
}

func (r *rankingRepository) GetTrackedKeywords(ctx context.Context) ([]string, error) {
	query, args, err := r.builder.
		Select("keyword").
		From(keywordsTable).
		Where(squirrel.Eq{"is_active": 1}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryStrings(ctx, query, args...)
}

func (r *rankingRepository) GetTrackedAsins(ctx context.Context) ([]string, error) {
	query, args, err := r.builder.
		Select("asin").
		Distinct().
		From(productsTable).
		OrderBy("asin").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryStrings(ctx, query, args...)
}

func (r *rankingRepository) GetLatestSnapshotDate(ctx context.Context) (string, error) {
	query, args, err := r.builder.
		Select("MAX(timestamp)").
		From(searchSnapshotsTable).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("erro ao construir a query: %w", err)
	}

	var latest sql.NullString
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&latest); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("erro ao buscar o último snapshot: %w", err)
	}
	return latest.String, nil
}

// GetLatestRanking retorna a posição mais recente do ASIN; Found=false quando não há histórico
func (r *rankingRepository) GetLatestRanking(ctx context.Context, keyword, asin string) (*domain.KeywordRankingInfo, error) {
	info := &domain.KeywordRankingInfo{Keyword: keyword, ASIN: asin}

	query, args, err := r.latestTimestampQuery(keyword, asin)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var timestamp string
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&timestamp); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return info, nil
		}
		return nil, fmt.Errorf("erro ao buscar ranking de %q/%s: %w", keyword, asin, err)
	}

	organic, err := r.latestPosition(ctx, keyword, asin, organicFlag)
	if err != nil {
		return nil, err
	}
	sponsored, err := r.latestPosition(ctx, keyword, asin, sponsoredFlag)
	if err != nil {
		return nil, err
	}

	info.OrganicPosition = organic
	info.SponsoredPosition = sponsored
	info.SnapshotTimestamp = timestamp
	info.Found = true
	return info, nil
}

func (r *rankingRepository) latestTimestampQuery(keyword, asin string) (string, []any, error) {
	return r.builder.
		Select("timestamp").
		From(rankingHistoryTable).
		Where(squirrel.Eq{"keyword": keyword, "asin": asin}).
		OrderBy("timestamp DESC").
		Limit(1).
		ToSql()
}

func (r *rankingRepository) latestPositionQuery(keyword, asin string, sponsored int) (string, []any, error) {
	return r.builder.
		Select("position").
		From(rankingHistoryTable).
		Where(squirrel.Eq{"keyword": keyword, "asin": asin, "is_sponsored": sponsored}).
		OrderBy("timestamp DESC").
		Limit(1).
		ToSql()
}

func (r *rankingRepository) latestPosition(ctx context.Context, keyword, asin string, sponsored int) (*int, error) {
	query, args, err := r.latestPositionQuery(keyword, asin, sponsored)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var position int
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&position); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar posição: %w", err)
	}
	return &position, nil
}

func (r *rankingRepository) queryStrings(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("erro ao escanear linha: %w", err)
		}
		out = append(out, value)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}
	return out, nil
}

func (r *rankingRepository) Close() error {
	return r.conn.Close()
}

type rankingOpener struct {
	driver string
}

// NewRankingOpener cria o abridor para o driver configurado (sqlite ou postgres)
func NewRankingOpener(driver string) RankingOpener {
	return &rankingOpener{driver: driver}
}

// Available indica se o recurso existe. Para sqlite verifica o arquivo; um DSN postgres é sempre tentado.
func (o *rankingOpener) Available(target string) bool {
	if strings.TrimSpace(target) == "" {
		return false
	}
	if o.driver != config.DriverSQLite {
		return true
	}
	info, err := os.Stat(strings.TrimPrefix(target, "file:"))
	return err == nil && !info.IsDir()
}

func (o *rankingOpener) Open(ctx context.Context, target string) (RankingRepository, error) {
	conn, err := database.NewConnection(ctx, o.driver, target)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir banco de ranking: %w", err)
	}
	return NewRankingRepository(conn), nil
}

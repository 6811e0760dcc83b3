package app

import (
	"context"
	"time"

	"mahjongscore/common/cache"
	"mahjongscore/common/config"
	"mahjongscore/common/log"
	"mahjongscore/core/domain/entity"
	"mahjongscore/core/domain/repository"
	"mahjongscore/game/engines/mahjong"
)

// Scorer 持有只读的表和默认规则、场况，可并发调用
// 每次计分创建独立的 ScoreCalculator，请求之间不共享可变状态
type Scorer struct {
	tables    *mahjong.Tables
	rules     mahjong.Rule
	situation mahjong.Situation
	workers   int
	cache     *cache.ResultCache[*cachedScore]
	repo      repository.ScoreRecordRepository
}

// NewScorer 加载拆分表并按配置构造
func NewScorer(cfg *config.Config) (*Scorer, error) {
	tables, err := mahjong.LoadTables(cfg.TableConf.SuitPatterns, cfg.TableConf.HonorPatterns)
	if err != nil {
		return nil, err
	}
	return NewScorerWithTables(tables, cfg)
}

// NewScorerWithTables 使用已加载的表
func NewScorerWithTables(tables *mahjong.Tables, cfg *config.Config) (*Scorer, error) {
	situation, err := SituationFromConfig(cfg.Situation)
	if err != nil {
		return nil, err
	}
	var rules mahjong.Rule
	if cfg.RuleConf.AkaDora {
		rules |= mahjong.RuleAkaDora
	}
	if cfg.RuleConf.OpenTanyao {
		rules |= mahjong.RuleOpenTanyao
	}

	s := &Scorer{
		tables:    tables,
		rules:     rules,
		situation: situation,
		workers:   cfg.BatchConf.Workers,
	}
	if s.workers <= 0 {
		s.workers = 1
	}
	// 检查默认场况
	if _, err := s.newCalculator(situation); err != nil {
		return nil, err
	}

	if cfg.CacheConf.Enabled {
		c, err := cache.NewResultCache[*cachedScore](cfg.CacheConf.MaxCost, time.Duration(cfg.CacheConf.TTLSeconds)*time.Second)
		if err != nil {
			return nil, err
		}
		s.cache = c
	}
	return s, nil
}

// SetRepository 设置后每次成功的计分都会保存
func (s *Scorer) SetRepository(repo repository.ScoreRecordRepository) {
	s.repo = repo
}

func (s *Scorer) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}

func (s *Scorer) newCalculator(situation mahjong.Situation) (*mahjong.ScoreCalculator, error) {
	calc, err := mahjong.NewScoreCalculator(s.tables)
	if err != nil {
		return nil, err
	}
	calc.SetRules(s.rules)
	if err := calc.SetSituation(situation); err != nil {
		return nil, err
	}
	return calc, nil
}

// calc 计分，返回结果及对应的持久化记录
func (s *Scorer) calc(req *ScoreRequest) (*mahjong.Result, *entity.ScoreRecord, error) {
	p, err := req.parse(s.situation)
	if err != nil {
		return nil, nil, err
	}
	calc, err := s.newCalculator(p.situation)
	if err != nil {
		return nil, nil, err
	}
	result, err := calc.Calc(p.hand, p.win, p.flags)
	if err != nil {
		return nil, nil, err
	}
	return result, NewScoreRecord(result, p.flags, p.situation), nil
}

// Score 计分单个请求，配置了仓储时保存记录，保存失败不影响结果
func (s *Scorer) Score(ctx context.Context, req *ScoreRequest) (*mahjong.Result, error) {
	result, record, err := s.calc(req)
	if err != nil {
		log.Debug("计分失败: hand=%s, win=%s, err=%v", req.Hand, req.Win, err)
		return nil, err
	}
	if s.repo != nil {
		if err := s.repo.SaveScoreRecord(ctx, record); err != nil {
			log.Warn("保存计分记录失败: id=%s, err=%v", record.ID.Hex(), err)
		}
	}
	return result, nil
}

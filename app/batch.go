package app

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"mahjongscore/common/log"
	"mahjongscore/core/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/sync/errgroup"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxLineSize = 1 << 20

// BatchStats 批量计分统计
type BatchStats struct {
	Total     int
	Succeeded int
	Failed    int
	CacheHits int
}

// RunBatch 每行一个 JSON 请求，并发计分后按输入顺序每行输出一个结果
// 相同的请求命中缓存时不再计算；单个请求失败只体现在对应的输出行
func (s *Scorer) RunBatch(ctx context.Context, r io.Reader, w io.Writer) (BatchStats, error) {
	var lines [][]byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		lines = append(lines, append([]byte(nil), line...))
	}
	if err := scanner.Err(); err != nil {
		return BatchStats{}, fmt.Errorf("read batch input: %w", err)
	}

	stats := BatchStats{Total: len(lines)}
	responses := make([]*ScoreResponse, len(lines))
	var (
		mu      sync.Mutex
		records []*entity.ScoreRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, line := range lines {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			resp, record, hit := s.scoreLine(i, line)
			responses[i] = resp
			mu.Lock()
			if hit {
				stats.CacheHits++
			}
			if record != nil {
				records = append(records, record)
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return stats, err
	}

	enc := json.NewEncoder(w)
	for _, resp := range responses {
		if resp.Error != "" {
			stats.Failed++
		} else {
			stats.Succeeded++
		}
		if err := enc.Encode(resp); err != nil {
			return stats, fmt.Errorf("write batch output: %w", err)
		}
	}

	if s.repo != nil && len(records) > 0 {
		if err := s.repo.SaveScoreRecords(ctx, records); err != nil {
			log.Warn("批量保存计分记录失败: count=%d, err=%v", len(records), err)
		}
	}
	log.Info("批量计分完成: total=%d, succeeded=%d, failed=%d, cacheHits=%d",
		stats.Total, stats.Succeeded, stats.Failed, stats.CacheHits)
	return stats, nil
}

// cachedScore 缓存的输出及其记录，命中时记录以新 ID 重新保存
type cachedScore struct {
	resp   *ScoreResponse
	record *entity.ScoreRecord
}

// scoreLine 计分一行，返回输出、需要保存的记录以及是否命中缓存
func (s *Scorer) scoreLine(index int, line []byte) (*ScoreResponse, *entity.ScoreRecord, bool) {
	var req ScoreRequest
	if err := json.Unmarshal(line, &req); err != nil {
		return NewErrorResponse(index, fmt.Errorf("parse request: %w", err)), nil, false
	}

	key := req.Key()
	if s.cache != nil {
		if cached, ok := s.cache.Lookup(key); ok {
			resp := *cached.resp
			resp.Index = index
			var record *entity.ScoreRecord
			if cached.record != nil {
				record = cached.record.Renew()
			}
			return &resp, record, true
		}
	}

	var resp *ScoreResponse
	result, record, err := s.calc(&req)
	if err != nil {
		resp = NewErrorResponse(index, err)
	} else {
		resp = NewScoreResponse(index, result)
	}
	if s.cache != nil {
		s.cache.Put(key, &cachedScore{resp: resp, record: record})
	}
	return resp, record, false
}

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"mahjongscore/app"
	"mahjongscore/common/config"
	"mahjongscore/common/log"

	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string

	hand  string
	melds []string
	win   string
	flags []string

	inputFile  string
	outputFile string

	recordID string
	limit    int
	offset   int
)

var rootCmd = &cobra.Command{
	Use:   "mahjong-score",
	Short: "立直麻将点数计算",
	Long:  `立直麻将点数计算：役种判定、符计算、点数移动`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("logLevel") || cfg.LogConf.Level == "" {
			cfg.LogConf.Level = logLevel
		}
		// batch 与 history 的结果写到 stdout，日志改写到 stderr
		if cmd.Name() == batchCmd.Name() || cmd.Name() == historyCmd.Name() {
			log.InitLogTo(os.Stderr, cfg.AppName, cfg.LogConf.Level)
		} else {
			log.InitLog(cfg.AppName, cfg.LogConf.Level)
		}
		loadedConfig = cfg
		return nil
	},
}

var loadedConfig *config.Config

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "计算一手牌的点数",
	Example: `  mahjong-score score --hand 123456789m234p55s --win 4p --flags tsumo
  mahjong-score score --hand 234m567p88p345s --melds pon:777z --win 8p`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &app.ScoreRequest{Hand: hand, Win: win, Flags: flags}
		for _, m := range melds {
			typ, tiles, ok := strings.Cut(m, ":")
			if !ok {
				return cmd.Usage()
			}
			req.Melds = append(req.Melds, app.MeldRequest{Type: typ, Tiles: tiles})
		}
		return app.RunScore(cmd.Context(), loadedConfig, req, cmd.OutOrStdout())
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "批量计分，每行一个 JSON 请求",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		in, out := cmd.InOrStdin(), cmd.OutOrStdout()
		if inputFile != "" && inputFile != "-" {
			f, err := os.Open(inputFile)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		if outputFile != "" && outputFile != "-" {
			f, createErr := os.Create(outputFile)
			if createErr != nil {
				return createErr
			}
			// 写入的文件关闭失败也算失败
			defer func() {
				if closeErr := f.Close(); closeErr != nil && err == nil {
					err = closeErr
				}
			}()
			out = f
		}
		return app.RunBatch(cmd.Context(), loadedConfig, in, out)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "查询已保存的计分记录",
	Example: `  mahjong-score history --hand 123456789m234p55s --limit 10
  mahjong-score history --id 6650c4f2a1b2c3d4e5f60718`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if recordID == "" && hand == "" {
			return cmd.Usage()
		}
		q := app.HistoryQuery{ID: recordID, Hand: hand, Limit: limit, Offset: offset}
		for _, m := range melds {
			typ, tiles, ok := strings.Cut(m, ":")
			if !ok {
				return cmd.Usage()
			}
			q.Melds = append(q.Melds, app.MeldRequest{Type: typ, Tiles: tiles})
		}
		return app.RunHistory(cmd.Context(), loadedConfig, q, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "resource", "resource/application.yml", "resource file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "logLevel", "info", "log level: debug, info, warn, error")

	scoreCmd.Flags().StringVar(&hand, "hand", "", "concealed tiles in mpsz notation, including the winning tile")
	scoreCmd.Flags().StringSliceVar(&melds, "melds", nil, "melds as type:tiles, e.g. pon:777z,chi:234m")
	scoreCmd.Flags().StringVar(&win, "win", "", "winning tile")
	scoreCmd.Flags().StringSliceVar(&flags, "flags", nil, "hand flags, e.g. tsumo,riichi,ippatsu")
	scoreCmd.MarkFlagRequired("hand")
	scoreCmd.MarkFlagRequired("win")

	batchCmd.Flags().StringVar(&inputFile, "input", "-", "input file, - for stdin")
	batchCmd.Flags().StringVar(&outputFile, "output", "-", "output file, - for stdout")

	historyCmd.Flags().StringVar(&recordID, "id", "", "record id")
	historyCmd.Flags().StringVar(&hand, "hand", "", "concealed tiles in mpsz notation")
	historyCmd.Flags().StringSliceVar(&melds, "melds", nil, "melds as type:tiles")
	historyCmd.Flags().IntVar(&limit, "limit", 20, "max records, 0 for all")
	historyCmd.Flags().IntVar(&offset, "offset", 0, "records to skip")

	rootCmd.AddCommand(scoreCmd, batchCmd, historyCmd)
}

// run 返回退出码，defer 在 os.Exit 之前执行
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Error("error happen: %v", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}

// Command-line interface for the agriassist knowledge base
package main

import (
	"agriassist/agriassist/config"
	"agriassist/agriassist/services/chatbot"
	"agriassist/agriassist/sources/psql"
	"agriassist/agriassist/sources/psql/dao"
	"agriassist/agriassist/utils/color"
	"agriassist/agriassist/utils/logging"
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.Log.Dir)
	defer logging.Sync()

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		fmt.Println(color.ColorError("Could not connect to the database: " + err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	switch args[0] {
	case "ask":
		lang := "en"
		if len(args) > 1 {
			lang = args[1]
		}
		ask(cfg, dao.NewKnowledgeDAO(db.DB), lang)
	case "seed":
		if len(args) < 2 {
			usage()
			os.Exit(1)
		}
		res, err := seedFile(context.Background(), args[1], dao.NewKnowledgeDAO(db.DB), dao.NewSoilRequirementDAO(db.DB))
		if err != nil {
			fmt.Println(color.ColorError(err.Error()))
			os.Exit(1)
		}
		fmt.Println(color.ColorInfo(fmt.Sprintf("Seeded %d knowledge records and %d soil requirements (%d skipped)",
			res.Knowledge, res.Soil, res.Skipped)))
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("agriassist CLI usage:")
	fmt.Println("  agriassist ask [en|hi|te|kn|ml]   # Ask the chatbot from the terminal")
	fmt.Println("  agriassist seed <file.yaml>       # Load knowledge and soil requirements")
}

func ask(cfg config.Config, store chatbot.KnowledgeStore, lang string) {
	responder := chatbot.NewResponderFromConfig(cfg, store)
	defer responder.Close()

	fmt.Println(color.ColorInfo("Ask a farming question. Type 'exit' to quit."))
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(color.ColorPrompt("agriassist> "))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		if line == "" {
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.RequestTimeout)
		reply := responder.Respond(ctx, line, lang)
		cancel()

		fmt.Println(color.ColorAnswer(reply.Response))
		if reply.Source != nil {
			fmt.Println(color.ColorSource("source: " + *reply.Source))
		}
		if len(reply.MatchedKeywords) > 0 {
			fmt.Println(color.ColorSource("matched: " + strings.Join(reply.MatchedKeywords, ", ")))
		}
		fmt.Println()
	}
}

package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"empath-llm/internal/classifier"
	"empath-llm/internal/config"
	"empath-llm/internal/domain"
	"empath-llm/internal/llm"
	"empath-llm/internal/service"
)

func main() {
	ctx := context.Background()
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	cultures := domain.LoadCulturalProfiles()

	var llmClient llm.LLMClient
	if cfg.LLMAPIKey != "" {
		llmClient = llm.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, logger)
	}

	var cls classifier.Classifier = classifier.NewKeywordClassifier()
	if cfg.ClassifierMode == "llm" && llmClient != nil {
		cls = classifier.NewLLMClassifier(llmClient, logger)
	}

	detector := service.NewDetectorService(cls, cultures, logger)
	responder := service.NewResponderService(llmClient, cultures, logger)
	trends := service.NewTrendService(cfg.TrendWindow)
	profiler := service.NewProfilerService()
	sessions := service.NewSessionManager()
	chatSvc := service.NewChatService(detector, responder, trends, profiler, sessions, logger)

	fmt.Println("Emotional Sentiment Analysis Chatbot")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Type 'quit' to exit, 'help' for commands, or just start chatting.")

	culture := chooseCulture(reader, cfg.DefaultCulture)
	session := sessions.Create(culture)
	fmt.Printf("Cultural context set to: %s\n", culture)
	fmt.Println(strings.Repeat("-", 50))

	for {
		fmt.Print("\nYou: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nGoodbye!")
			return
		}
		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		switch {
		case input == "quit" || input == "exit" || input == "bye":
			printSummary(chatSvc, session.ID)
			fmt.Println("\nThank you for chatting! Take care!")
			return

		case input == "help":
			fmt.Println("Commands:")
			fmt.Println("  trends   - show emotional trends analysis")
			fmt.Println("  summary  - show conversation summary")
			fmt.Println("  context <western/eastern/default> - change cultural context")
			fmt.Println("  quit     - exit the chatbot")

		case input == "trends":
			insights, err := chatSvc.EmotionTrends(session.ID)
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("Status: %s\n", insights.Status)
			if insights.Trends.TotalMessages > 0 {
				fmt.Printf("Dominant emotion: %s\n", insights.Trends.DominantEmotion)
				fmt.Printf("Trend: %s\n", insights.Trends.Trend)
			}

		case input == "summary":
			printSummary(chatSvc, session.ID)

		case strings.HasPrefix(input, "context "):
			name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(input, "context ")))
			if !cultures.Has(name) {
				fmt.Println("Invalid context. Use: western, eastern, or default")
				continue
			}
			session.SetCulturalContext(name)
			fmt.Printf("Cultural context changed to: %s\n", name)

		default:
			result, err := chatSvc.ProcessMessage(ctx, session.ID, input, "")
			if err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("\nBot: %s\n", result.BotResponse)
			fmt.Printf("  detected emotion: %s (confidence: %.2f, intensity: %s)\n",
				result.EmotionAnalysis.PrimaryEmotion,
				result.EmotionAnalysis.Confidence,
				result.EmotionAnalysis.Intensity,
			)
			// Cada tercer mensaje se sugiere una continuacion.
			if result.ConversationMetadata.MessageCount%3 == 0 && len(result.ResponseMetadata.FollowUpSuggestions) > 0 {
				fmt.Printf("  you might want to explore: %s\n", result.ResponseMetadata.FollowUpSuggestions[0])
			}
		}
	}
}

func chooseCulture(reader *bufio.Reader, fallback string) string {
	options := map[string]string{"1": "western", "2": "eastern", "3": "default"}

	fmt.Println("\nSelect your cultural context preference:")
	fmt.Println("1. Western (direct communication)")
	fmt.Println("2. Eastern (more reserved communication)")
	fmt.Println("3. Default (balanced approach)")

	for {
		fmt.Print("Enter choice (1-3): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return fallback
		}
		if culture, ok := options[strings.TrimSpace(line)]; ok {
			return culture
		}
		fmt.Println("Please enter 1, 2, or 3")
	}
}

func printSummary(chatSvc *service.ChatService, sessionID string) {
	summary, err := chatSvc.ConversationSummary(sessionID)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		return
	}
	fmt.Println("\nConversation Summary:")
	fmt.Printf("  messages exchanged: %d\n", summary.TotalMessages)
	fmt.Printf("  dominant emotion: %s\n", summary.DominantEmotion)
	fmt.Printf("  conversation quality: %s (depth: %s)\n", summary.Quality.Quality, summary.Quality.Depth)
	if len(summary.IdentifiedThemes) > 0 {
		fmt.Printf("  themes: %s\n", strings.Join(summary.IdentifiedThemes, ", "))
	}
	for _, rec := range summary.Recommendations {
		fmt.Printf("  - %s\n", rec)
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"nestify_server/routes"
	"nestify_server/services"
	"nestify_server/socket"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Socket.IO server pushes simulated agent replies
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize services
	feedService := &services.FeedService{Dynamo: dynamoService}
	profileService := &services.ProfileService{Dynamo: dynamoService, Feed: feedService}
	recommendationService := &services.RecommendationService{Dynamo: dynamoService, Feed: feedService}
	chatService := services.NewChatService(dynamoService, socketServer)
	sessionService := services.NewSessionService()
	photoService := services.InitializePhotoService()

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Nestify")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	r.Handle("/socket.io/", socketServer)

	// Register routes
	routes.RegisterSessionRoutes(r, sessionService, profileService, chatService)
	routes.RegisterFeedRoutes(r, feedService, sessionService)
	routes.RegisterLikeRoutes(r, feedService)
	routes.RegisterRecommendationRoutes(r, recommendationService, sessionService)
	routes.RegisterProfileRoutes(r, profileService)
	routes.RegisterChatRoutes(r, chatService)
	routes.RegisterPhotoRoutes(r, photoService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}

package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"github.com/mkelley412/youth-group-backend/config"
)

var (
	FirebaseApp     *firebase.App
	FirestoreClient *firestore.Client
	once            sync.Once
	initErr         error
	isInitialized   bool
)

// InitFirestore initializes the Firebase Admin SDK and the Firestore client
// (singleton pattern). Firestore backs the notes / event-types document
// store, which is optional: any failure here disables it without stopping
// the server.
func InitFirestore(cfg *config.Config) error {
	if isInitialized {
		return initErr
	}

	once.Do(func() {
		ctx := context.Background()

		credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
		if credentialsPath == "" {
			credentialsPath = cfg.FirebaseCredentialsPath
		}
		if credentialsPath == "" {
			credentialsPath = "./serviceAccountKey.json"
		}

		projectID := cfg.FirebaseProjectID

		if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
			log.Printf("⚠️ Firebase credentials file not found at: %s", credentialsPath)
			log.Println("ℹ️ Continuing without Firestore (notes and event types will be disabled)")
			isInitialized = true
			initErr = fmt.Errorf("firebase credentials file not found: %s", credentialsPath)
			return
		}

		if projectID == "" {
			log.Println("⚠️ FIREBASE_PROJECT_ID not set - Firestore will not work properly")
			isInitialized = true
			initErr = fmt.Errorf("FIREBASE_PROJECT_ID is required for Firestore")
			return
		}

		fbConfig := &firebase.Config{
			ProjectID: projectID,
		}

		opt := option.WithCredentialsFile(credentialsPath)
		app, err := firebase.NewApp(ctx, fbConfig, opt)
		if err != nil {
			log.Printf("❌ Error initializing Firebase app: %v", err)
			isInitialized = true
			initErr = fmt.Errorf("firebase app initialization failed: %v", err)
			return
		}

		client, err := app.Firestore(ctx)
		if err != nil {
			log.Printf("❌ Error getting Firestore client: %v", err)
			FirebaseApp = app
			isInitialized = true
			initErr = fmt.Errorf("firestore client initialization failed: %v", err)
			return
		}

		FirebaseApp = app
		FirestoreClient = client
		isInitialized = true
		initErr = nil
		log.Printf("✅ Firestore initialized for project: %s", projectID)
	})

	return initErr
}

// IsFirestoreEnabled reports whether the document store is available.
func IsFirestoreEnabled() bool {
	return FirestoreClient != nil
}

// GetInitError returns the reason Firestore is disabled, if any.
func GetInitError() error {
	return initErr
}

// CloseFirestore releases the Firestore client on shutdown.
func CloseFirestore() {
	if FirestoreClient != nil {
		_ = FirestoreClient.Close()
	}
}

// File: mezbaan/main.go
package main

import (
	"context"
	"os"
	"time"

	"mezbaan/client"
	"mezbaan/config"
	"mezbaan/services/booking"
	"mezbaan/session"
	"mezbaan/utils"

	"go.uber.org/zap"
)

// Composition root. Wires the session store, the REST client and the booking
// core together, and — when login credentials are supplied via the
// environment — runs a quick overview of the user's bookings.
func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	utils.InitSessionCache()
	store := session.NewStore(
		utils.GetSessionCacheClient(),
		time.Duration(config.AppConfig.SessionTTLMin)*time.Minute,
	)

	sessionID := os.Getenv("MEZBAAN_SESSION_ID")
	provider := session.NewProvider(store, sessionID)

	apiClient := client.New(client.Options{
		BaseURL:           config.AppConfig.APIBaseURL,
		Timeout:           time.Duration(config.AppConfig.HTTPTimeout) * time.Second,
		RequestsPerMinute: config.AppConfig.MaxRequestsPerMin,
		Credentials:       provider,
		Logger:            logger,
	})

	bookingService := &booking.DefaultBookingService{
		Catalog:  apiClient,
		Bookings: apiClient,
		Ratings:  apiClient,
		Logger:   logger,
	}

	ctx := context.Background()

	if email := os.Getenv("MEZBAAN_EMAIL"); email != "" && sessionID == "" {
		auth, err := apiClient.Login(ctx, email, os.Getenv("MEZBAAN_PASSWORD"))
		if err != nil {
			logger.Sugar().Fatalf("main: login failed: %v", err)
		}
		sessionID, err = store.Save(ctx, session.Credentials{Token: auth.Token, User: auth.User})
		if err != nil {
			logger.Sugar().Fatalf("main: failed to persist session: %v", err)
		}
		provider.SessionID = sessionID
		logger.Info("logged in", zap.String("sessionId", sessionID), zap.String("user", auth.User.Name))
	}

	if provider.SessionID == "" {
		logger.Info("no session; set MEZBAAN_SESSION_ID or MEZBAAN_EMAIL/MEZBAAN_PASSWORD")
		return
	}

	overview, err := bookingService.Overview(ctx)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to fetch bookings: %v", err)
	}
	for _, t := range booking.ServiceTypes() {
		if group := overview.Groups[t]; len(group) > 0 {
			logger.Info("bookings",
				zap.String("type", string(t)),
				zap.Int("count", len(group)),
				zap.Int("pages", overview.TotalPages(t)),
			)
		}
	}
}

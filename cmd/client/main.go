// Command client registers a freshly generated identity with a
// copper-beam server and prints the server's answer. With -delete and an
// administrator key file it removes a user instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/adapter"
	"github.com/MKhiriev/go-copper-beam/internal/crypto"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/models"
)

func main() {
	server := flag.String("server", "localhost:8080", "copper-beam server address")
	landing := flag.String("landing", "", "landing URL reported with the registration")
	deleteID := flag.String("delete", "", "id of the user to delete")
	keyFile := flag.String("key", "", "PEM private key of the administrator, used with -delete")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	log := logger.NewLogger("copper-beam-client")
	keys := crypto.NewKeyService()

	serverAdapter, err := adapter.NewHTTPServerAdapter(adapter.Config{HTTPAddress: *server, RequestTimeout: *timeout}, keys, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	ctx := context.Background()

	if *deleteID != "" {
		if err := deleteUser(ctx, serverAdapter, keys, *keyFile, *deleteID); err != nil {
			log.Fatal().Err(err).Msg("delete user")
		}
		return
	}

	key, err := keys.GenerateKeyInfo()
	if err != nil {
		log.Fatal().Err(err).Msg("generate key")
	}

	registered, err := serverAdapter.RegisterUser(ctx, models.RegisterUserDetails{
		Signable: models.Signable{
			Address:     key.Address,
			Fingerprint: "cli",
			Timestamp:   time.Now().UnixMilli(),
		},
		PublicKey:  key.PublicKeyPEM,
		LandingURL: *landing,
		UserAgent:  "copper-beam-client",
	}, key.PrivateKeyPEM)
	if err != nil {
		log.Fatal().Err(err).Msg("register user")
	}

	fmt.Printf("Address: %s\n", key.Address)
	fmt.Printf("User ID: %s\n", registered.ID)
	fmt.Printf("Session: %s\n", registered.SessionID)
	fmt.Printf("Private key:\n%s\n", key.PrivateKeyPEM)
}

func deleteUser(ctx context.Context, serverAdapter adapter.ServerAdapter, keys crypto.KeyService, keyFile, userID string) error {
	privateKeyPEM, err := os.ReadFile(keyFile)
	if err != nil {
		return fmt.Errorf("read key file: %w", err)
	}
	key, err := keys.KeyInfoFromPrivateKey(string(privateKeyPEM))
	if err != nil {
		return err
	}

	deleted, err := serverAdapter.DeleteUser(ctx, models.DeleteUserDetails{
		Signable: models.Signable{Address: key.Address, Fingerprint: "cli", Timestamp: time.Now().UnixMilli()},
		UserID:   userID,
	}, key.PrivateKeyPEM)
	if err != nil {
		return err
	}

	fmt.Printf("Deleted: %s\n", deleted.ID)
	return nil
}

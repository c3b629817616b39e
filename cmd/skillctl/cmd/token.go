package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/artem13815/skillscan/pkg/security/jwt"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the extraction history API",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().String("subject", "", "token subject (required)")
	tokenCmd.Flags().Duration("ttl", 0, "token lifetime (default JWT_TTL_MINUTES)")
	_ = tokenCmd.MarkFlagRequired("subject")
}

func runToken(cmd *cobra.Command, args []string) error {
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	subject, _ := cmd.Flags().GetString("subject")
	ttl, _ := cmd.Flags().GetDuration("ttl")
	if ttl <= 0 {
		ttl = time.Duration(cfg.JWTTTLMinutes) * time.Minute
	}
	tok, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, ttl).Generate(subject)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}

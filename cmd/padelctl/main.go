// Command padelctl holds operator utilities for the Padel Cygnus server.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	_ "modernc.org/sqlite"

	"padelcygnus/internal/adapters/storage"
	bookingStore "padelcygnus/internal/adapters/storage/booking"
	memberStore "padelcygnus/internal/adapters/storage/member"
	notificationStore "padelcygnus/internal/adapters/storage/notification"
	tournamentStore "padelcygnus/internal/adapters/storage/tournament"
	workspaceStore "padelcygnus/internal/adapters/storage/workspace"
	"padelcygnus/internal/application/orchestrators"
	"padelcygnus/internal/config"
	"padelcygnus/internal/domain/credential"
	"padelcygnus/internal/domain/role"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "padelctl",
		Short:        "Operator utilities for the Padel Cygnus server",
		SilenceUsage: true,
	}
	root.SetIn(in)
	root.SetOut(out)
	root.AddCommand(newHashPasswordCmd(), newSeedCmd(), newCheckConfigCmd())
	return root
}

// newHashPasswordCmd prints a bcrypt hash for PADEL_ADMIN_PASSWORD_HASH.
func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Hash an admin password for PADEL_ADMIN_PASSWORD_HASH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := readPassword(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("read password: %w", err)
			}
			hash, err := credential.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

// readPassword masks input on a terminal and reads one line otherwise.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// newSeedCmd prints the sample data a new session starts with, as stored.
func newSeedCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed a workspace in an in-memory database and print it as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := role.Parse(kind)
			if err != nil {
				return err
			}
			set, err := seedSnapshot(cmd.Context(), r)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(set)
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "admin", "workspace kind: admin or member")
	return cmd
}

// seedSnapshot seeds one workspace of kind in a throwaway database and reads
// every collection back through the stores.
// POST: The returned set is what a fresh session of kind would see
func seedSnapshot(ctx context.Context, kind role.Role) (orchestrators.SeedSet, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	db, err := storage.Open(":memory:")
	if err != nil {
		return orchestrators.SeedSet{}, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	if err := storage.MigrateDB(db); err != nil {
		return orchestrators.SeedSet{}, fmt.Errorf("migrate database: %w", err)
	}

	bookings := bookingStore.NewSQLiteStore(db)
	members := memberStore.NewSQLiteStore(db)
	tournaments := tournamentStore.NewSQLiteStore(db)
	notifications := notificationStore.NewSQLiteStore(db)
	ws, err := orchestrators.ExecuteSeedWorkspace(ctx, orchestrators.SeedWorkspaceInput{WorkspaceID: uuid.NewString(), Kind: kind},
		orchestrators.SeedWorkspaceDeps{
			WorkspaceStore:    workspaceStore.NewSQLiteStore(db),
			BookingStore:      bookings,
			MemberStore:       members,
			TournamentStore:   tournaments,
			NotificationStore: notifications,
			GenerateID:        uuid.NewString,
			Now:               time.Now,
		})
	if err != nil {
		return orchestrators.SeedSet{}, err
	}

	var set orchestrators.SeedSet
	if set.Bookings, err = bookings.List(ctx, ws.ID, bookingStore.ListFilter{}); err != nil {
		return orchestrators.SeedSet{}, fmt.Errorf("list bookings: %w", err)
	}
	if set.Members, err = members.List(ctx, ws.ID); err != nil {
		return orchestrators.SeedSet{}, fmt.Errorf("list members: %w", err)
	}
	if set.Tournaments, err = tournaments.List(ctx, ws.ID); err != nil {
		return orchestrators.SeedSet{}, fmt.Errorf("list tournaments: %w", err)
	}
	if set.Notifications, err = notifications.List(ctx, ws.ID); err != nil {
		return orchestrators.SeedSet{}, fmt.Errorf("list notifications: %w", err)
	}
	return set, nil
}

// newCheckConfigCmd validates the environment the server would start with.
func newCheckConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-config",
		Short: "Validate PADEL_* environment variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "env=%s addr=%s dsn=%s\n", cfg.Env, cfg.Addr, cfg.DSN)
			fmt.Fprintf(out, "admin=%s hashed=%t\n", cfg.AdminEmail, cfg.AdminPasswordHash != "")
			fmt.Fprintf(out, "email=%s\n", emailProvider(cfg))
			return nil
		},
	}
}

func emailProvider(cfg config.Config) string {
	if cfg.ResendKey != "" {
		return "resend"
	}
	return "noop"
}

package cli

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/rpc"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"funcexplorer.com/explorer/api"
	"funcexplorer.com/explorer/catalog"
	"funcexplorer.com/explorer/charts"
	"funcexplorer.com/explorer/config"
	"funcexplorer.com/explorer/shared"
	"funcexplorer.com/explorer/store"
)

// serveRPC registers the explorer service and accepts connections in the
// background. It returns the bound listener.
func serveRPC(addr string, t shared.Thresholds) (net.Listener, error) {
	server := rpc.NewServer()
	if err := server.Register(shared.NewExplorerRPC(catalog.Default(), t)); err != nil {
		return nil, fmt.Errorf("failed to register RPC: %w", err)
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	log.Printf("RPC Server listening on %s", listener.Addr())

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				if errors.Is(err, net.ErrClosed) {
					return
				}
				log.Printf("Failed to accept connection: %s", err)
				continue
			}
			go server.ServeConn(conn)
		}
	}()
	return listener, nil
}

// serveCmd runs the RPC service and the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API and the RPC service",
	Long: `Start the RPC service (unless --rpc is empty) and the HTTP API.

Live charts are kept in memory and sampled at the interactive threshold.

Example:
  explorer serve --api :8080 --rpc :3410
  explorer serve --rpc "" --interactive-clamp 30`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Println("Starting Function Explorer...")
		t := thresholds()
		g, ctx := errgroup.WithContext(cmd.Context())

		if config.RPCAddr != "" {
			listener, err := serveRPC(config.RPCAddr, t)
			if err != nil {
				return err
			}
			// stop accepting once the API server is gone
			g.Go(func() error {
				<-ctx.Done()
				return listener.Close()
			})
		}

		board := charts.NewBoard(catalog.Default(), t.Interactive)
		apiServer := api.NewServer(catalog.Default(), board, t)
		g.Go(func() error {
			return apiServer.Start(config.APIAddr)
		})
		return g.Wait()
	},
}

// ExportResult is the output of the export command
type ExportResult struct {
	Status string    `json:"status"`
	DB     string    `json:"db"`
	Run    store.Run `json:"run"`
	Series int       `json:"series"`
}

func runExport(path string, t shared.Thresholds) (*ExportResult, error) {
	db, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	c := catalog.Default()
	run, series := store.Snapshot(c, t.Interactive, t.Static)
	if err := store.NewRunRepository(db).Save(c, run, series); err != nil {
		return nil, fmt.Errorf("failed to save run: %w", err)
	}

	log.Printf("Export %s written to %s: %d functions, %d series", run.ID, db.Path(), run.Functions, len(series))
	return &ExportResult{Status: "exported", DB: db.Path(), Run: run, Series: len(series)}, nil
}

// exportCmd snapshots every graph to sqlite
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write every graph of the catalog to sqlite",
	Long: `Sample every family at its defaults (once per variant) and both of its
problems, and store the points in the --db sqlite file as one run.

Example:
  explorer export --db ./graphs.db`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := runExport(config.DBPath, thresholds())
		if err != nil {
			return err
		}
		if !outputText {
			outputResult(result)
			return nil
		}
		fmt.Fprintf(stdout, "Exported run %s (%d series) to %s\n", result.Run.ID, result.Series, result.DB)
		return nil
	},
}

// runsCmd lists export runs
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List export runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.Open(config.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		runs, err := store.NewRunRepository(db).List()
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
		if !outputText {
			outputResult(map[string]interface{}{
				"count": len(runs),
				"runs":  runs,
			})
			return nil
		}
		for _, r := range runs {
			fmt.Fprintf(stdout, "%s  %s  clamps %g/%g\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"), r.InteractiveClamp, r.StaticClamp)
		}
		return nil
	},
}

// pointsCmd reads one stored series back
var pointsCmd = &cobra.Command{
	Use:   "points [run-id] [function]",
	Short: "Print a stored series",
	Long: `Print the points of one series of an export run.

Example:
  explorer points 5f0c... trigonometric --variant cos --view proposed`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		variant, _ := cmd.Flags().GetString("variant")
		view, _ := cmd.Flags().GetString("view")

		db, err := store.Open(config.DBPath)
		if err != nil {
			return err
		}
		defer db.Close()

		points, err := store.NewRunRepository(db).Points(args[0], args[1], variant, view)
		if err != nil {
			return fmt.Errorf("failed to read points: %w", err)
		}
		if points == nil {
			return fmt.Errorf("no %s series for %s/%q in run %s", view, args[1], variant, args[0])
		}
		outputResult(points)
		return nil
	},
}

func init() {
	pointsCmd.Flags().String("variant", "", "Variant id")
	pointsCmd.Flags().String("view", store.ViewInteractive, "interactive, solved or proposed")

	rootCmd.AddCommand(
		serveCmd,
		exportCmd,
		runsCmd,
		pointsCmd,
	)
}

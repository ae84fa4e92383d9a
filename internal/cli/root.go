package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/macrolog/internal/config"
	"github.com/terraincognita07/macrolog/internal/db"
	"github.com/terraincognita07/macrolog/internal/logging"
	"github.com/terraincognita07/macrolog/internal/services"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime carries what every command shares: configuration, the logger and
// a lazily opened store.
type runtime struct {
	envFile    string
	out        io.Writer
	in         *os.File
	readSecret func(prompt string) ([]byte, error)
	now        func() time.Time

	cfg    config.Config
	logger *zap.Logger
	store  *store
}

type store struct {
	database    *gorm.DB
	rules       services.FoodRuleTable
	interpreter *services.FoodInterpreter
	meals       *services.MealService
	weekly      *services.WeeklyService
	ownerAuth   *services.OwnerAuthService
}

// Execute runs the macrolog command line against the process streams.
func Execute(ctx context.Context) error {
	rt := &runtime{out: os.Stdout, in: os.Stdin, now: time.Now}
	rt.readSecret = rt.promptNoEcho
	return newRootCommand(rt).ExecuteContext(ctx)
}

func newRootCommand(rt *runtime) *cobra.Command {
	root := &cobra.Command{
		Use:           "macrolog",
		Short:         "Log meals as free text and track calories and macros",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rt.envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			rt.cfg = cfg
			if rt.logger == nil {
				logger, err := logging.NewLogger(cfg.LogLevel)
				if err != nil {
					return err
				}
				rt.logger = logger
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return rt.close()
		},
	}
	root.SetOut(rt.out)
	root.PersistentFlags().StringVar(&rt.envFile, "env-file", ".env", "optional dotenv file with configuration")

	root.AddCommand(
		newServeCommand(rt),
		newLogCommand(rt),
		newTodayCommand(rt),
		newWeekCommand(rt),
		newNewDayCommand(rt),
		newEstimateCommand(rt),
		newBMRCommand(rt),
		newSetPassphraseCommand(rt),
	)
	return root
}

func (rt *runtime) foodRules() (services.FoodRuleTable, error) {
	rules, err := services.LoadFoodRules(rt.cfg.FoodRulesPath)
	if err != nil {
		return services.FoodRuleTable{}, fmt.Errorf("load food rules: %w", err)
	}
	return rules, nil
}

// openStore opens the database once per run and builds the services on it.
func (rt *runtime) openStore() (*store, error) {
	if rt.store != nil {
		return rt.store, nil
	}

	rules, err := rt.foodRules()
	if err != nil {
		return nil, err
	}
	database, err := db.OpenSQLite(rt.cfg.DBPath, rt.logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	interpreter := services.NewFoodInterpreter(rules)
	meals := services.NewMealService(repositories.FoodLogs, interpreter, rt.cfg.Location, rt.logger.Named("meals"))
	rt.store = &store{
		database:    database,
		rules:       rules,
		interpreter: interpreter,
		meals:       meals,
		weekly:      services.NewWeeklyService(meals, rt.cfg.Location),
		ownerAuth:   services.NewOwnerAuthService(repositories.Settings),
	}
	return rt.store, nil
}

func (rt *runtime) close() error {
	var closeErr error
	if rt.store != nil {
		sqlDB, err := rt.store.database.DB()
		if err == nil {
			closeErr = sqlDB.Close()
		}
		rt.store = nil
	}
	if rt.logger != nil {
		// Sync fails on terminals; only the close error matters here.
		_ = rt.logger.Sync()
	}
	return closeErr
}

func (rt *runtime) promptNoEcho(prompt string) ([]byte, error) {
	fmt.Fprint(rt.out, prompt)
	value, err := readPasswordNoEcho(rt.in)
	fmt.Fprintln(rt.out)
	if err != nil {
		return nil, fmt.Errorf("read passphrase: %w", err)
	}
	return value, nil
}

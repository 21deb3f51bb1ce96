package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"paperrate/commands"
	"paperrate/config"
	"paperrate/handlers"
	"paperrate/sessions"
)

func main() {
	cfg := config.Load()
	manager := sessions.NewManager(cfg.SessionTTL)

	app := pocketbase.New()
	app.RootCmd.AddCommand(commands.NewCalcCommand())

	// Drop idle sessions in the background
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		sessions.RegisterPruneJob(app, manager)
		log.Printf("sessions: idle sessions expire after %s", manager.TTL())
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS(cfg.StaticDir), false))

		// Every page works on the visitor's own entry table
		se.Router.BindFunc(handlers.SessionMiddleware(manager))

		// ── Import (before /entries/{index} routes) ─────────────
		se.Router.GET("/entries/import", handlers.HandleImportPage())
		se.Router.POST("/entries/import", handlers.HandleImportUpload())
		se.Router.GET("/entries/import/template", handlers.HandleImportTemplate())

		// ── Export ──────────────────────────────────────────────
		se.Router.GET("/entries/export/pdf", handlers.HandleExportPDF(cfg))
		se.Router.GET("/entries/export/excel", handlers.HandleExportExcel(cfg))

		// ── Live calculation preview ────────────────────────────
		se.Router.POST("/entries/calculate", handlers.HandleEntryCalculate())

		// ── Entry CRUD ──────────────────────────────────────────
		se.Router.GET("/entries", handlers.HandleEntryList(cfg))
		se.Router.POST("/entries", handlers.HandleEntrySave(cfg))
		se.Router.DELETE("/entries", handlers.HandleEntriesClear())
		se.Router.GET("/entries/{index}/edit", handlers.HandleEntryEdit(cfg))
		se.Router.POST("/entries/{index}/save", handlers.HandleEntryUpdate(cfg))
		se.Router.DELETE("/entries/{index}", handlers.HandleEntryDelete())

		// Redirect home to the entries page
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/entries")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}

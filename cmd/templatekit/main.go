package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/imuii/templatekit/internal/builder"
	"github.com/imuii/templatekit/internal/config"
	"github.com/imuii/templatekit/internal/describe"
	"github.com/imuii/templatekit/internal/filler"
	"github.com/imuii/templatekit/internal/layoutjson"
	"github.com/imuii/templatekit/internal/parser"
	"github.com/imuii/templatekit/internal/renderer"
	"github.com/imuii/templatekit/internal/storage"
	"github.com/imuii/templatekit/internal/template"
	"github.com/imuii/templatekit/internal/watch"
)

var (
	rootCmd = &cobra.Command{
		Use:   "templatekit",
		Short: "Portfolio template engine: parse, fill, render and convert HTML templates",
	}
	configPath string
	dataPath   string
	outPath    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to templatekit.yaml (optional)")

	for _, cmd := range []*cobra.Command{fillCmd, renderCmd, watchCmd} {
		cmd.Flags().StringVar(&dataPath, "data", "", "JSON file with fill data (defaults to a built-in dummy profile)")
	}
	for _, cmd := range []*cobra.Command{fillCmd, renderCmd, convertCmd, exportCmd, importCmd, watchCmd} {
		cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (defaults to stdout)")
	}
	renderCmd.Flags().Bool("no-wrapper", false, "Emit only section fragments, without the document shell")

	templateCmd.AddCommand(templateSaveCmd, templateGetCmd, templateListCmd, templateUpdateCmd, templateDeleteCmd)
	rootCmd.AddCommand(parseCmd, fieldsCmd, fillCmd, renderCmd, convertCmd, exportCmd, importCmd, watchCmd, templateCmd)
}

func loadConfig() *config.Config {
	if configPath == "" {
		if _, err := os.Stat("templatekit.yaml"); err == nil {
			configPath = "templatekit.yaml"
		} else {
			return config.Default()
		}
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func initStore(cfg *config.Config) *storage.SQLiteStore {
	store, err := storage.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open template store: %v", err)
	}
	return store
}

func readTemplateFile(path string) string {
	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read template: %v", err)
	}
	return string(raw)
}

func loadFillData() *template.FillData {
	if dataPath == "" {
		return filler.GenerateDummyData(nil)
	}
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		log.Fatalf("Failed to read data file: %v", err)
	}
	var data template.FillData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("Failed to parse data file: %v", err)
	}
	return &data
}

func emit(content string) {
	if outPath == "" {
		fmt.Println(content)
		return
	}
	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", outPath, err)
	}
	fmt.Printf("✅ Wrote %s\n", outPath)
}

func emitJSON(v any) {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	emit(string(encoded))
}

var parseCmd = &cobra.Command{
	Use:   "parse [template.html]",
	Short: "Parse a template into its marked sections",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := parser.ParseTemplate(readTemplateFile(args[0]))

		emitJSON(result)

		for _, w := range result.Warnings {
			fmt.Fprintf(os.Stderr, "⚠️  %s\n", w)
		}
		if result.HasErrors() {
			for _, e := range result.Errors {
				fmt.Fprintf(os.Stderr, "❌ %s\n", e)
			}
			os.Exit(1)
		}
	},
}

var fieldsCmd = &cobra.Command{
	Use:   "fields [template.html]",
	Short: "Derive the editable field schema from a template's placeholders",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		emitJSON(parser.GenerateFieldsFromTemplate(readTemplateFile(args[0])))
	},
}

var fillCmd = &cobra.Command{
	Use:   "fill [template.html]",
	Short: "Substitute data into a template's placeholders",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		emit(filler.FillTemplate(readTemplateFile(args[0]), loadFillData()))
	},
}

var renderCmd = &cobra.Command{
	Use:   "render [template.html]",
	Short: "Render a template section-by-section with conditions and custom slots",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		html := readTemplateFile(args[0])
		noWrapper, _ := cmd.Flags().GetBool("no-wrapper")

		result := parser.ParseTemplate(html)
		if result.HasErrors() {
			// Fallback: flat fill over the whole document.
			fmt.Fprintf(os.Stderr, "⚠️  %s, falling back to flat fill\n", result.Errors[0])
			emit(filler.FillTemplate(html, loadFillData()))
			return
		}

		out := renderer.RenderTemplateWithSections(result.Sections, loadFillData(),
			renderer.Options{IncludeWrapper: cfg.Render.IncludeWrapper && !noWrapper},
			&renderer.TemplateMeta{
				HeadContent:    result.HeadContent,
				BodyAttributes: result.BodyAttributes,
				HTMLTemplate:   html,
			})
		emit(out)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert [layout.json]",
	Short: "Convert a Layout JSON document back into an HTML template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := layoutjson.ImportFromFile(args[0])
		if !result.Success {
			for _, e := range result.Errors {
				fmt.Fprintf(os.Stderr, "❌ %s\n", e)
			}
			os.Exit(1)
		}

		sections := layoutjson.ConvertLayoutJSONToSections(result.Document)
		emit(builder.ConvertSectionsToFullCode(sections, "", ""))
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [template.html]",
	Short: "Export a template's section model as Layout JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sections := builder.ConvertFullCodeToSections(readTemplateFile(args[0]))
		if len(sections) == 0 {
			log.Fatal("No sections found in template")
		}

		doc := layoutjson.ConvertSectionsToLayoutJSON(sections)
		out, warnings, err := layoutjson.ExportString(doc)
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "⚠️  %s\n", w)
		}
		emit(out)
	},
}

var importCmd = &cobra.Command{
	Use:   "import [layout.json]",
	Short: "Validate a Layout JSON file and report its section model",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		result := layoutjson.ImportFromFile(args[0])
		if !result.Success {
			for _, e := range result.Errors {
				fmt.Fprintf(os.Stderr, "❌ %s\n", e)
			}
			os.Exit(1)
		}
		emitJSON(layoutjson.ConvertLayoutJSONToSections(result.Document))
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch [template.html]",
	Short: "Re-render a template whenever its file changes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		data := loadFillData()

		render := func(path string, content []byte) {
			result := parser.ParseTemplate(string(content))
			var out string
			if result.HasErrors() {
				out = filler.FillTemplate(string(content), data)
			} else {
				out = renderer.RenderTemplateWithSections(result.Sections, data,
					renderer.Options{IncludeWrapper: cfg.Render.IncludeWrapper},
					&renderer.TemplateMeta{
						HeadContent:    result.HeadContent,
						BodyAttributes: result.BodyAttributes,
						HTMLTemplate:   string(content),
					})
			}
			if outPath == "" {
				fmt.Printf("🔄 %s re-rendered (%d bytes)\n", path, len(out))
				return
			}
			if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
				log.Printf("Failed to write %s: %v", outPath, err)
				return
			}
			fmt.Printf("🔄 %s → %s\n", path, outPath)
		}

		w, err := watch.NewWatcher(args[0],
			time.Duration(cfg.Watch.MinDebounceMs)*time.Millisecond,
			time.Duration(cfg.Watch.MaxDebounceMs)*time.Millisecond,
			render)
		if err != nil {
			log.Fatalf("Failed to start watcher: %v", err)
		}
		defer w.Close()

		// Initial render before the first change.
		if content, err := os.ReadFile(args[0]); err == nil {
			render(args[0], content)
		}

		fmt.Printf("👀 Watching %s...\n", args[0])
		if err := w.Run(context.Background()); err != nil && err != context.Canceled {
			log.Fatalf("Watch failed: %v", err)
		}
	},
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage the local template store",
}

var templateSaveCmd = &cobra.Command{
	Use:   "save [template.html]",
	Short: "Save a template into the store, deriving fields and sections",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		store := initStore(cfg)
		defer store.Close()

		html := readTemplateFile(args[0])
		name, _ := cmd.Flags().GetString("name")
		description, _ := cmd.Flags().GetString("description")

		result := parser.ParseTemplate(html)
		if result.HasErrors() {
			log.Fatalf("Template does not parse: %v", result.Errors)
		}
		fields := parser.GenerateFieldsFromTemplate(html)

		if description == "" && cfg.AI.APIKey != "" {
			ctx := context.Background()
			if d, err := describe.NewGeminiDescriber(ctx, cfg.AI.APIKey, cfg.AI.Model); err == nil {
				if text, err := d.Describe(ctx, name, result.Sections, fields); err == nil {
					description = text
				} else {
					fmt.Fprintf(os.Stderr, "⚠️  Description generation failed: %v\n", err)
				}
			}
		}

		created, err := store.Create(context.Background(), &storage.StoredTemplate{
			Name:         name,
			Description:  description,
			HTMLTemplate: html,
			Fields:       fields,
			Sections:     result.Sections,
		})
		if err != nil {
			log.Fatalf("Failed to save template: %v", err)
		}
		fmt.Printf("💾 Saved template %d (%s)\n", created.ID, created.Name)
	},
}

var templateGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Print a stored template as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := initStore(loadConfig())
		defer store.Close()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatalf("Invalid template id: %v", err)
		}
		tpl, err := store.Get(context.Background(), id)
		if err != nil {
			log.Fatalf("Failed to load template: %v", err)
		}
		emitJSON(tpl)
	},
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored templates",
	Run: func(cmd *cobra.Command, args []string) {
		store := initStore(loadConfig())
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		offset, _ := cmd.Flags().GetInt("offset")

		templates, err := store.List(context.Background(), limit, offset)
		if err != nil {
			log.Fatalf("Failed to list templates: %v", err)
		}
		for _, t := range templates {
			fmt.Printf("%4d  %-24s %s\n", t.ID, t.Name, t.Description)
		}
	},
}

var templateUpdateCmd = &cobra.Command{
	Use:   "update [id] [template.html]",
	Short: "Replace a stored template's HTML, re-deriving fields and sections",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store := initStore(loadConfig())
		defer store.Close()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatalf("Invalid template id: %v", err)
		}
		ctx := context.Background()
		tpl, err := store.Get(ctx, id)
		if err != nil {
			log.Fatalf("Failed to load template: %v", err)
		}

		html := readTemplateFile(args[1])
		result := parser.ParseTemplate(html)
		if result.HasErrors() {
			log.Fatalf("Template does not parse: %v", result.Errors)
		}

		tpl.HTMLTemplate = html
		tpl.Fields = parser.GenerateFieldsFromTemplate(html)
		tpl.Sections = result.Sections
		if err := store.Update(ctx, tpl); err != nil {
			log.Fatalf("Failed to update template: %v", err)
		}
		fmt.Printf("💾 Updated template %d\n", id)
	},
}

var templateDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a stored template",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := initStore(loadConfig())
		defer store.Close()

		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatalf("Invalid template id: %v", err)
		}
		if err := store.Delete(context.Background(), id); err != nil {
			log.Fatalf("Failed to delete template: %v", err)
		}
		fmt.Printf("🗑️  Deleted template %d\n", id)
	},
}

func init() {
	templateSaveCmd.Flags().String("name", "Untitled", "Template name")
	templateSaveCmd.Flags().String("description", "", "Template description (generated with Gemini when omitted and an API key is configured)")
	templateListCmd.Flags().Int("limit", 20, "Page size")
	templateListCmd.Flags().Int("offset", 0, "Page offset")
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jcarrillo/cpgo/internal/calculation"
	"github.com/jcarrillo/cpgo/internal/catalog"
	"github.com/jcarrillo/cpgo/internal/config"
	"github.com/jcarrillo/cpgo/internal/domain"
	"github.com/jcarrillo/cpgo/internal/export"
	"github.com/jcarrillo/cpgo/internal/output"
	"github.com/jcarrillo/cpgo/internal/solver"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "cpgo",
	Short: "Calculadora de costo patronal para Mexico",
	Long:  "Calcula cuanto cuesta un trabajador al patron: IMSS, INFONAVIT, ISN, provisiones y retenciones de ISR.",
}

var calcularCmd = &cobra.Command{
	Use:   "calcular [archivo.yaml]",
	Short: "Calcula el costo patronal de los trabajadores de un escenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalogPath, _ := cmd.Flags().GetString("catalogo")
		formatName, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		rs, cat := runScenario(args[0], catalogPath, 0)
		data, err := renderResultSet(rs, cat, formatName)
		if err != nil {
			log.Fatal(err)
		}
		writeOutput(data, outPath, formatName)
	},
}

var loteCmd = &cobra.Command{
	Use:   "lote [archivo.yaml]",
	Short: "Calcula una nomina completa en paralelo",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalogPath, _ := cmd.Flags().GetString("catalogo")
		formatName, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")
		poolSize, _ := cmd.Flags().GetInt("workers")

		rs, cat := runScenario(args[0], catalogPath, poolSize)
		data, err := renderResultSet(rs, cat, formatName)
		if err != nil {
			log.Fatal(err)
		}
		writeOutput(data, outPath, formatName)

		ok, failed := 0, 0
		for _, item := range rs.Items {
			if item.Err != nil {
				failed++
			} else {
				ok++
			}
		}
		fmt.Fprintf(os.Stderr, "%d trabajadores calculados, %d con error\n", ok, failed)
	},
}

var netoCmd = &cobra.Command{
	Use:   "neto [objetivo] [archivo.yaml]",
	Short: "Encuentra el salario bruto que deja un neto mensual objetivo",
	Long: `Busca por biseccion el salario bruto cuyo neto mensual (tras IMSS e ISR)
queda dentro de la tolerancia del objetivo. Sin archivo, la empresa se arma
con las banderas --estado, --prima-riesgo, --zona-fronteriza y --antiguedad.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		target, err := decimal.NewFromString(args[0])
		if err != nil {
			log.Fatalf("objetivo invalido %q: %v", args[0], err)
		}
		catalogPath, _ := cmd.Flags().GetString("catalogo")

		var (
			company domain.CompanyConfig
			worker  domain.Worker
			cat     *catalog.Catalog
		)
		if len(args) == 2 {
			scenario, loaded, err := config.NewParser().LoadFileWithCatalog(args[1], catalogPath)
			if err != nil {
				log.Fatal(err)
			}
			company = scenario.Company
			worker = scenario.Workers[0]
			cat = loaded
		} else {
			cat, err = catalog.Load(catalogPath)
			if err != nil {
				log.Fatal(err)
			}
			estado, _ := cmd.Flags().GetString("estado")
			prima, _ := cmd.Flags().GetString("prima-riesgo")
			zona, _ := cmd.Flags().GetBool("zona-fronteriza")
			absorber, _ := cmd.Flags().GetBool("absorber-cuota")
			antiguedad, _ := cmd.Flags().GetInt("antiguedad")

			riskPremium, err := decimal.NewFromString(prima)
			if err != nil {
				log.Fatalf("prima de riesgo invalida %q: %v", prima, err)
			}
			company = domain.CompanyConfig{
				Name:                "empresa",
				State:               estado,
				RiskPremium:         riskPremium,
				BorderZone:          zona,
				AbsorbEmployeeQuota: absorber,
			}
			company.ApplyDefaults()
			worker = domain.Worker{Name: "trabajador", SeniorityYears: antiguedad}
		}

		engine, err := calculation.NewCostEngine(cat)
		if err != nil {
			log.Fatal(err)
		}
		outcome, err := solver.New(engine).SolveNet(&company, worker, target)
		if err != nil {
			log.Fatal(err)
		}

		if !outcome.Converged {
			fmt.Fprintf(os.Stderr, "advertencia: sin convergencia tras %d iteraciones, se muestra el mejor candidato\n", outcome.Iterations)
		}
		fmt.Printf("Neto objetivo:          %s\n", output.FormatCurrency(outcome.TargetNet))
		fmt.Printf("Salario diario:         %s\n", output.FormatCurrency(outcome.GrossDaily))
		fmt.Printf("Salario bruto mensual:  %s\n", output.FormatCurrency(outcome.GrossMonthly))
		fmt.Printf("Neto obtenido:          %s\n", output.FormatCurrency(outcome.AchievedNet))
		fmt.Printf("Iteraciones:            %d\n", outcome.Iterations)

		data, err := (output.ConsoleFormatter{}).Format(&output.ResultSet{
			CatalogYear: cat.Year,
			Company:     company,
			Items: []calculation.BatchItem{
				{Worker: worker, Result: outcome.Result},
			},
		})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validarCmd = &cobra.Command{
	Use:   "validar [archivo.yaml]",
	Short: "Valida un archivo de escenario",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		scenario, cat, err := config.NewParser().LoadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("El escenario %s es valido (catalogo %d, %d trabajadores)\n",
			args[0], cat.Year, len(scenario.Workers))
	},
}

var catalogoCmd = &cobra.Command{
	Use:   "catalogo",
	Short: "Imprime el catalogo de tarifas activo como YAML",
	Run: func(cmd *cobra.Command, args []string) {
		catalogPath, _ := cmd.Flags().GetString("catalogo")
		cat, err := catalog.Load(catalogPath)
		if err != nil {
			log.Fatal(err)
		}
		data, err := yaml.Marshal(cat)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Imprime la version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "cpgo %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// runScenario parses the file, runs every worker and returns the result set
// with the catalog it came from.
func runScenario(filename, catalogPath string, poolSize int) (*output.ResultSet, *catalog.Catalog) {
	scenario, cat, err := config.NewParser().LoadFileWithCatalog(filename, catalogPath)
	if err != nil {
		log.Fatal(err)
	}
	engine, err := calculation.NewCostEngine(cat)
	if err != nil {
		log.Fatal(err)
	}

	runner := calculation.NewBatchRunner(engine, poolSize)
	items := runner.Run(context.Background(), &scenario.Company, scenario.Workers)

	return &output.ResultSet{
		CatalogYear: cat.Year,
		Company:     scenario.Company,
		Items:       items,
	}, cat
}

func renderResultSet(rs *output.ResultSet, cat *catalog.Catalog, formatName string) ([]byte, error) {
	if formatName == "xlsx" {
		return export.ExcelExporter{Catalog: cat}.Format(rs)
	}
	f, err := output.GetFormatter(formatName)
	if err != nil {
		return nil, err
	}
	return f.Format(rs)
}

func writeOutput(data []byte, outPath, formatName string) {
	if outPath == "" {
		if formatName == "xlsx" {
			log.Fatal("el formato xlsx requiere --out")
		}
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Fprintf(os.Stderr, "escrito %s (%d bytes)\n", outPath, len(data))
}

func init() {
	calcularCmd.Flags().StringP("format", "f", "console", "Formato de salida (console, json, csv, xlsx)")
	calcularCmd.Flags().StringP("out", "o", "", "Archivo de salida (omitir para stdout)")
	calcularCmd.Flags().String("catalogo", "", "Catalogo YAML alterno (omitir para el del anio en curso)")

	loteCmd.Flags().StringP("format", "f", "csv", "Formato de salida (console, json, csv, xlsx)")
	loteCmd.Flags().StringP("out", "o", "", "Archivo de salida (omitir para stdout)")
	loteCmd.Flags().String("catalogo", "", "Catalogo YAML alterno")
	loteCmd.Flags().IntP("workers", "w", 0, "Tamano del pool de calculo (0 = un goroutine por CPU)")

	netoCmd.Flags().String("catalogo", "", "Catalogo YAML alterno")
	netoCmd.Flags().String("estado", "ciudad_de_mexico", "Estado para el ISN")
	netoCmd.Flags().String("prima-riesgo", "0.005", "Prima de riesgo de trabajo de la empresa")
	netoCmd.Flags().Bool("zona-fronteriza", false, "Empresa en la zona libre de la frontera norte")
	netoCmd.Flags().Bool("absorber-cuota", false, "El patron absorbe la cuota obrera del salario minimo")
	netoCmd.Flags().Int("antiguedad", 0, "Anios de antiguedad del trabajador")

	catalogoCmd.Flags().String("catalogo", "", "Catalogo YAML alterno")

	rootCmd.AddCommand(calcularCmd)
	rootCmd.AddCommand(loteCmd)
	rootCmd.AddCommand(netoCmd)
	rootCmd.AddCommand(validarCmd)
	rootCmd.AddCommand(catalogoCmd)
	rootCmd.AddCommand(servirCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

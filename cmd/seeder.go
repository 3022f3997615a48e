package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the lookup dimensions with sample data",
	Long:  `Seed the API-managed lookup dimensions (cargos, locais, regimes, tipos) for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		db, err := initGorm(sqlxDB)
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		lookups := []struct {
			Table string
			Rows  []struct{ Codigo, Descricao string }
		}{
			{"dim_local_atividade", []struct{ Codigo, Descricao string }{
				{"SEDE", "Sede administrativa"},
				{"CAMPO", "Atividade de campo"},
				{"REMOTO", "Trabalho remoto"},
			}},
			{"dim_regime_trabalho", []struct{ Codigo, Descricao string }{
				{"INT", "Integral"},
				{"PARC", "Parcial"},
				{"PLAN", "Plantao"},
			}},
			{"dim_tipo_requerimento", []struct{ Codigo, Descricao string }{
				{"ADIC", "Adicional de periculosidade"},
				{"INSA", "Adicional de insalubridade"},
			}},
		}

		for _, lookup := range lookups {
			for _, row := range lookup.Rows {
				var exists int
				scan := db.Raw(fmt.Sprintf("SELECT 1 FROM %s WHERE codigo = ?", lookup.Table), row.Codigo).Row()
				if err := scan.Scan(&exists); err == nil {
					continue
				}

				if err := db.Exec(
					fmt.Sprintf("INSERT INTO %s (codigo, descricao) VALUES (?, ?)", lookup.Table),
					row.Codigo, row.Descricao,
				).Error; err != nil {
					log.Fatalf("failed to insert %s %s: %v", lookup.Table, row.Codigo, err)
				}
				fmt.Printf("Seeded %s: %s\n", lookup.Table, row.Codigo)
			}
		}

		cargos := []string{"Engenheiro", "Tecnico de Seguranca", "Analista Administrativo"}
		for _, nome := range cargos {
			var exists int
			scan := db.Raw("SELECT 1 FROM dim_cargo WHERE nome = ?", nome).Row()
			if err := scan.Scan(&exists); err == nil {
				continue
			}

			if err := db.Exec("INSERT INTO dim_cargo (nome) VALUES (?)", nome).Error; err != nil {
				log.Fatalf("failed to insert cargo %s: %v", nome, err)
			}
			fmt.Printf("Seeded cargo: %s\n", nome)
		}

		fmt.Println("Lookup dimensions seeded successfully")
	},
}

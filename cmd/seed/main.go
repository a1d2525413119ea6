// seed puebla los catálogos básicos (provincias y municipios de República
// Dominicana, categorías de medicamentos, enfermedades y vías de
// administración). Es idempotente: los upserts permiten correrlo varias veces.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"os"

	"github.com/donamed/donamed-api/internal/domain/entity"
	"github.com/donamed/donamed-api/internal/domain/repository"
	"github.com/donamed/donamed-api/internal/infrastructure/postgres"
	"github.com/donamed/donamed-api/pkg/config"
	"github.com/donamed/donamed-api/pkg/logger"
)

type municipioSeed struct {
	id     string
	nombre string
}

// Provincias de República Dominicana con una muestra de municipios cabecera.
var provincias = []struct {
	id         string
	nombre     string
	municipios []municipioSeed
}{
	{"01", "Distrito Nacional", []municipioSeed{{"0101", "Santo Domingo de Guzmán"}}},
	{"02", "Azua", []municipioSeed{{"0201", "Azua de Compostela"}, {"0202", "Las Charcas"}}},
	{"03", "Baoruco", []municipioSeed{{"0301", "Neiba"}}},
	{"04", "Barahona", []municipioSeed{{"0401", "Santa Cruz de Barahona"}}},
	{"05", "Dajabón", []municipioSeed{{"0501", "Dajabón"}}},
	{"06", "Duarte", []municipioSeed{{"0601", "San Francisco de Macorís"}}},
	{"07", "Elías Piña", []municipioSeed{{"0701", "Comendador"}}},
	{"08", "El Seibo", []municipioSeed{{"0801", "Santa Cruz de El Seibo"}}},
	{"09", "Espaillat", []municipioSeed{{"0901", "Moca"}}},
	{"10", "Independencia", []municipioSeed{{"1001", "Jimaní"}}},
	{"11", "La Altagracia", []municipioSeed{{"1101", "Higüey"}, {"1102", "San Rafael del Yuma"}}},
	{"12", "La Romana", []municipioSeed{{"1201", "La Romana"}}},
	{"13", "La Vega", []municipioSeed{{"1301", "Concepción de La Vega"}, {"1302", "Constanza"}, {"1303", "Jarabacoa"}}},
	{"14", "María Trinidad Sánchez", []municipioSeed{{"1401", "Nagua"}}},
	{"15", "Monte Cristi", []municipioSeed{{"1501", "San Fernando de Monte Cristi"}}},
	{"16", "Pedernales", []municipioSeed{{"1601", "Pedernales"}}},
	{"17", "Peravia", []municipioSeed{{"1701", "Baní"}}},
	{"18", "Puerto Plata", []municipioSeed{{"1801", "San Felipe de Puerto Plata"}, {"1802", "Sosúa"}}},
	{"19", "Hermanas Mirabal", []municipioSeed{{"1901", "Salcedo"}}},
	{"20", "Samaná", []municipioSeed{{"2001", "Santa Bárbara de Samaná"}}},
	{"21", "San Cristóbal", []municipioSeed{{"2101", "San Cristóbal"}, {"2102", "Haina"}}},
	{"22", "San Juan", []municipioSeed{{"2201", "San Juan de la Maguana"}}},
	{"23", "San Pedro de Macorís", []municipioSeed{{"2301", "San Pedro de Macorís"}}},
	{"24", "Sánchez Ramírez", []municipioSeed{{"2401", "Cotuí"}}},
	{"25", "Santiago", []municipioSeed{{"2501", "Santiago de los Caballeros"}, {"2502", "Tamboril"}, {"2503", "Villa González"}}},
	{"26", "Santiago Rodríguez", []municipioSeed{{"2601", "San Ignacio de Sabaneta"}}},
	{"27", "Valverde", []municipioSeed{{"2701", "Mao"}}},
	{"28", "Monseñor Nouel", []municipioSeed{{"2801", "Bonao"}}},
	{"29", "Monte Plata", []municipioSeed{{"2901", "Monte Plata"}, {"2902", "Yamasá"}}},
	{"30", "Hato Mayor", []municipioSeed{{"3001", "Hato Mayor del Rey"}}},
	{"31", "San José de Ocoa", []municipioSeed{{"3101", "San José de Ocoa"}}},
	{"32", "Santo Domingo", []municipioSeed{{"3201", "Santo Domingo Este"}, {"3202", "Santo Domingo Oeste"}, {"3203", "Santo Domingo Norte"}, {"3204", "Boca Chica"}, {"3205", "Los Alcarrizos"}}},
}

var categorias = []entity.Categoria{
	{ID: "analgesicos", Nombre: "Analgésicos"},
	{ID: "antibioticos", Nombre: "Antibióticos"},
	{ID: "antihipertensivos", Nombre: "Antihipertensivos"},
	{ID: "antidiabeticos", Nombre: "Antidiabéticos"},
	{ID: "antiinflamatorios", Nombre: "Antiinflamatorios"},
	{ID: "anticonvulsivos", Nombre: "Anticonvulsivos"},
	{ID: "oncologicos", Nombre: "Oncológicos"},
	{ID: "gastrointestinales", Nombre: "Gastrointestinales"},
	{ID: "respiratorios", Nombre: "Respiratorios"},
	{ID: "vitaminas", Nombre: "Vitaminas y suplementos"},
}

var enfermedades = []entity.Enfermedad{
	{ID: "hipertension", Nombre: "Hipertensión arterial"},
	{ID: "diabetes", Nombre: "Diabetes mellitus"},
	{ID: "asma", Nombre: "Asma"},
	{ID: "epilepsia", Nombre: "Epilepsia"},
	{ID: "artritis", Nombre: "Artritis reumatoide"},
	{ID: "cancer", Nombre: "Cáncer"},
	{ID: "insuficiencia-renal", Nombre: "Insuficiencia renal crónica"},
	{ID: "cardiopatia", Nombre: "Cardiopatía"},
	{ID: "vih", Nombre: "VIH/SIDA"},
	{ID: "tuberculosis", Nombre: "Tuberculosis"},
}

var vias = []entity.ViaAdministracion{
	{ID: "oral", Nombre: "Oral"},
	{ID: "sublingual", Nombre: "Sublingual"},
	{ID: "intravenosa", Nombre: "Intravenosa"},
	{ID: "intramuscular", Nombre: "Intramuscular"},
	{ID: "subcutanea", Nombre: "Subcutánea"},
	{ID: "topica", Nombre: "Tópica"},
	{ID: "oftalmica", Nombre: "Oftálmica"},
	{ID: "inhalatoria", Nombre: "Inhalatoria"},
	{ID: "rectal", Nombre: "Rectal"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewCatalogoRepository(pool)
	if err := seed(repo); err != nil {
		log.Error().Err(err).Msg("siembra de catálogos")
		os.Exit(1)
	}
	log.Info().
		Int("provincias", len(provincias)).
		Int("categorias", len(categorias)).
		Int("enfermedades", len(enfermedades)).
		Int("vias", len(vias)).
		Msg("catálogos sembrados")
}

func seed(repo repository.CatalogoRepository) error {
	for _, p := range provincias {
		if err := repo.UpsertProvincia(&entity.Provincia{ID: p.id, Nombre: p.nombre}); err != nil {
			return err
		}
		for _, m := range p.municipios {
			mun := entity.Municipio{ID: m.id, ProvinciaID: p.id, Nombre: m.nombre}
			if err := repo.UpsertMunicipio(&mun); err != nil {
				return err
			}
		}
	}
	for i := range categorias {
		if err := repo.UpsertCategoria(&categorias[i]); err != nil {
			return err
		}
	}
	for i := range enfermedades {
		if err := repo.UpsertEnfermedad(&enfermedades[i]); err != nil {
			return err
		}
	}
	for i := range vias {
		if err := repo.UpsertVia(&vias[i]); err != nil {
			return err
		}
	}
	return nil
}

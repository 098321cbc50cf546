package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spotfinder/parking-analytics-api/infrastructure/migration"
	"github.com/spotfinder/parking-analytics-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

const (
	spotIDLength = 8
	characters   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	demoPassword = "spotfinder123"
)

type Owner struct {
	Name  string
	Email string
}

type Parking struct {
	Name        string
	Address     string
	Status      string
	TotalSpots  int
	Available   int
	RatePerHour float64
	OwnerEmail  string
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de carga de dados de demonstração...")
}

func generateSpotID() string {
	id, _ := gonanoid.Generate(characters, spotIDLength)
	return id
}

func insertOwners(tx *sql.Tx, owners []Owner) map[string]int64 {
	log.Printf("Iniciando inserção de %d proprietários...", len(owners))
	startTime := time.Now()

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("ERRO ao gerar hash de senha: %v", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO users (name, email, password_hash, role_id) VALUES ($1, $2, $3, 2)
		ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name RETURNING id`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para users: %v", err)
	}
	defer stmt.Close()

	ownerMap := make(map[string]int64)
	errorCount := 0

	for i, o := range owners {
		var id int64
		if err := stmt.QueryRow(o.Name, o.Email, string(hash)).Scan(&id); err != nil {
			log.Printf("ERRO ao inserir proprietário [%d/%d] %s: %v", i+1, len(owners), o.Email, err)
			errorCount++
			continue
		}
		ownerMap[o.Email] = id
	}

	log.Printf("Inserção de proprietários concluída em %v. Sucesso: %d, Erros: %d", time.Since(startTime), len(ownerMap), errorCount)
	return ownerMap
}

func insertParkings(tx *sql.Tx, parkings []Parking, ownerMap map[string]int64) []int64 {
	log.Printf("Iniciando inserção de %d parkings...", len(parkings))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO parkings (owner_id, name, address, status, total_spots, available_spots, rate_per_hour)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para parkings: %v", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(parkings))
	ownerNotFoundCount := 0

	for i, p := range parkings {
		ownerID, exists := ownerMap[p.OwnerEmail]
		if !exists {
			log.Printf("AVISO: Proprietário não encontrado para parking %s (%s)", p.Name, p.OwnerEmail)
			ownerNotFoundCount++
			continue
		}

		var id int64
		err := stmt.QueryRow(ownerID, p.Name, p.Address, p.Status, p.TotalSpots, p.Available, p.RatePerHour).Scan(&id)
		if err != nil {
			log.Printf("ERRO ao inserir parking [%d/%d] %s: %v", i+1, len(parkings), p.Name, err)
			continue
		}
		ids = append(ids, id)
	}

	log.Printf("Inserção de parkings concluída em %v. Sucesso: %d, Proprietários não encontrados: %d",
		time.Since(startTime), len(ids), ownerNotFoundCount)
	return ids
}

func insertReservations(tx *sql.Tx, parkingIDs []int64, perParking int) {
	log.Printf("Iniciando inserção de %d reservas por parking...", perParking)
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO reservations
		(parking_id, parking_spot_id, spot_label, driver_id, driver_name, vehicle_plate, date, start_time, end_time, total_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para reservations: %v", err)
	}
	defer stmt.Close()

	now := time.Now()
	successCount := 0

	for _, parkingID := range parkingIDs {
		for i := 0; i < perParking; i++ {
			spotID := generateSpotID()
			start := 7 + i%10
			createdAt := now.AddDate(0, 0, -i*3)
			_, err := stmt.Exec(
				parkingID,
				spotID,
				"A-"+spotID[:3],
				int64(1000+i%7),
				"Motorista "+spotID[:4],
				"ABC"+spotID[:4],
				createdAt.Format("2006-01-02"),
				time.Date(0, 1, 1, start, 0, 0, 0, time.UTC).Format("15:04:05"),
				time.Date(0, 1, 1, start+2, 0, 0, 0, time.UTC).Format("15:04:05"),
				float64(5+i%4)*2.5,
				"CONFIRMED",
				createdAt,
			)
			if err != nil {
				log.Printf("ERRO ao inserir reserva do parking %d: %v", parkingID, err)
				continue
			}
			successCount++
		}
	}

	log.Printf("Inserção de reservas concluída em %v. Sucesso: %d", time.Since(startTime), successCount)
}

func main() {
	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Println("Conectando ao banco de dados...")
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	if err := migration.Migrate(ctx, db); err != nil {
		log.Fatalf("ERRO ao aplicar migrações: %v", err)
	}

	owners := []Owner{
		{"Laura Méndez", "laura@spotfinder.dev"},
		{"Diego Rojas", "diego@spotfinder.dev"},
	}

	parkings := []Parking{
		{"Parking Centro", "Av. Central 120", "activo", 40, 12, 3.5, "laura@spotfinder.dev"},
		{"Parking Norte", "Calle 8 #45", "mantenimiento", 25, 25, 2.0, "laura@spotfinder.dev"},
		{"Parking Aeropuerto", "Ruta 5 km 3", "active", 120, 70, 5.0, "diego@spotfinder.dev"},
		{"Parking Plaza", "Plaza Mayor s/n", "inactivo", 15, 15, 1.5, "diego@spotfinder.dev"},
	}

	startTime := time.Now()
	log.Println("Iniciando transação...")

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	ownerMap := insertOwners(tx, owners)
	parkingIDs := insertParkings(tx, parkings, ownerMap)
	insertReservations(tx, parkingIDs, 12)

	if err := tx.Commit(); err != nil {
		log.Printf("ERRO ao confirmar transação: %v", err)
		if err := tx.Rollback(); err != nil {
			log.Fatalf("ERRO ao reverter transação: %v", err)
		}
		log.Println("Transação revertida")
		os.Exit(1)
	}

	log.Printf("Carga de demonstração concluída em %v!", time.Since(startTime))
}

package test

import (
	"context"
	"testing"
	"time"

	"github.com/jonmartinstorm/pakkesnusern/internal/dbwriter"
	"github.com/jonmartinstorm/pakkesnusern/internal/models"
	"github.com/jonmartinstorm/pakkesnusern/test/testutils"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestDBWriterIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("hopper over integrasjonstest i -short")
	}
	RegisterFailHandler(Fail)
	RunSpecs(t, "DBWriter Integrasjon")
}

var _ = Describe("dbwriter.WriteOccurrences", Ordered, func() {
	var testDB *testutils.TestDB
	var writer *dbwriter.PostgresWriter
	var ctx context.Context

	BeforeAll(func() {
		ctx = context.Background()
		testDB = testutils.StartTestPostgresContainer()
		testutils.RunMigrations(testDB.DB)

		var err error
		writer, err = dbwriter.NewPostgresWriter(ctx, testDB.DSN)
		Expect(err).To(BeNil())
	})

	AfterAll(func() {
		if writer != nil {
			Expect(writer.Close()).To(Succeed())
		}
		testDB.Close()
	})

	It("skriver et snapshot av forekomster", func() {
		snapshot := time.Now().UTC().Truncate(time.Second)
		occs := []models.Occurrence{
			{
				Package:      "is",
				Version:      "3.3.0",
				Source:       models.SourceNpmLock,
				LockfilePath: "/repo/package-lock.json",
			},
			{
				Package:      "synckit",
				Version:      "^0.10.0",
				Dev:          true,
				Source:       models.SourcePackageJSON,
				LockfilePath: "/repo/package.json",
			},
		}

		err := writer.WriteOccurrences(ctx, occs, snapshot)
		Expect(err).To(BeNil())

		row := testDB.DB.QueryRow(`SELECT COUNT(*) FROM forekomster WHERE pakke = 'is'`)
		var count int
		Expect(row.Scan(&count)).To(Succeed())
		Expect(count).To(Equal(1))

		row = testDB.DB.QueryRow(`SELECT dev FROM forekomster WHERE pakke = 'synckit'`)
		var dev bool
		Expect(row.Scan(&dev)).To(Succeed())
		Expect(dev).To(BeTrue())
	})

	It("tåler et tomt snapshot", func() {
		err := writer.WriteOccurrences(ctx, nil, time.Now())
		Expect(err).To(BeNil())

		row := testDB.DB.QueryRow(`SELECT COUNT(*) FROM forekomster`)
		var count int
		Expect(row.Scan(&count)).To(Succeed())
		Expect(count).To(Equal(2))
	})
})

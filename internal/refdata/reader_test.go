package refdata_test

import (
	"os"
	"path/filepath"

	"github.com/lmoreira/requerimento-service/internal/refdata"
	"github.com/lmoreira/requerimento-service/pkg/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func collectRecords(path string) []map[string]string {
	var records []map[string]string
	for record := range refdata.ReadRecords(path, logger.L()) {
		records = append(records, record)
	}
	return records
}

var _ = Describe("ReadRecords", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	writeFile := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
		return path
	}

	It("parses semicolon-delimited rows keyed by the header", func() {
		path := writeFile("dimUser.csv", "matricula;nome;uo\n123;Ana;XYZ\n456;Bruno;\n")

		records := collectRecords(path)
		Expect(records).To(HaveLen(2))
		Expect(records[0]).To(Equal(map[string]string{"matricula": "123", "nome": "Ana", "uo": "XYZ"}))
		Expect(records[1]["uo"]).To(Equal(""))
	})

	It("normalizes a BOM on the first header cell", func() {
		path := writeFile("bom.csv", "\ufeffcodigo;descricao\nA1; perigo \n")

		records := collectRecords(path)
		Expect(records).To(HaveLen(1))
		Expect(records[0]).To(HaveKey("codigo"))
		Expect(records[0]["descricao"]).To(Equal("perigo"))
	})

	It("pads short rows with empty values", func() {
		path := writeFile("short.csv", "a;b;c\n1;2\n")

		records := collectRecords(path)
		Expect(records).To(HaveLen(1))
		Expect(records[0]["c"]).To(Equal(""))
	})

	It("yields nothing for a missing file", func() {
		records := collectRecords(filepath.Join(dir, "nope.csv"))
		Expect(records).To(BeEmpty())
	})

	It("yields nothing for an empty file", func() {
		path := writeFile("empty.csv", "")
		Expect(collectRecords(path)).To(BeEmpty())
	})
})

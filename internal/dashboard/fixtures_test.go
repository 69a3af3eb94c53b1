package dashboard

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"povdash/internal/engine"
)

const indicatorCSV = `Country Name,Country Code,Indicator Name,Indicator Code,2010,2018,2019
World,WLD,"Population, total",SP.POP.TOTL,1000,1200,1300
Chad,TCD,"Population, total",SP.POP.TOTL,2000,2500,
Mali,MLI,"Population, total",SP.POP.TOTL,1500,,
South Asia,SAS,"Population, total",SP.POP.TOTL,999999,,
"Korea, Rep.",KOR,"Population, total",SP.POP.TOTL,1234567.5,,
`

const povertyCSV = `Country Name,Country Code,year,GINI index (World Bank estimate)
Chad,TCD,2011,43.3
Chad,TCD,2003,39.8
Chad,TCD,2010,
Mali,MLI,2010,33
Brazil,BRA,2010,52.9
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func loadDataset(t *testing.T, indicators, poverty string) *engine.Dataset {
	t.Helper()
	src := engine.Sources{IndicatorPath: writeFile(t, "PovStatsData.csv", indicators)}
	if poverty != "" {
		src.InequalityPath = writeFile(t, "poverty.csv", poverty)
	}
	ds, err := engine.Load(context.Background(), src)
	require.NoError(t, err)
	t.Cleanup(ds.Release)
	return ds
}

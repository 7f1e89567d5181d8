package main

import (
	"agriassist/agriassist/sources/psql/dao"
	"agriassist/agriassist/sources/psql/psqltest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
knowledge:
  - keywords: rice, paddy, water
    response_en: Rice needs standing water.
    response_hi: धान को खड़े पानी की जरूरत होती है।
    source: AgriDept
  - keywords: ""
    response_en: missing keywords
soil_requirements:
  - crop: Rice
    nitrogen: [60, 100]
    phosphorus: [35, 60]
    potassium: [35, 45]
    temperature: [20, 27]
    humidity: [80, 85]
    ph: [5, 7.5]
    rainfall: [180, 300]
  - crop: broken
    nitrogen: [10]
`

func TestSeed(t *testing.T) {
	db := psqltest.NewDB(t)
	knowledge := dao.NewKnowledgeDAO(db)
	soil := dao.NewSoilRequirementDAO(db)

	res, err := seed(t.Context(), strings.NewReader(seedYAML), knowledge, soil)
	require.NoError(t, err)
	assert.Equal(t, seedResult{Knowledge: 1, Soil: 1, Skipped: 2}, res)

	records, err := knowledge.List(t.Context())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].ResponseHI)

	reqs, err := soil.GetAll(t.Context())
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "rice", reqs[0].CropName)
	assert.Equal(t, 7.5, reqs[0].PhMax)
}

func TestSeedInvalidYAML(t *testing.T) {
	_, err := seed(t.Context(), strings.NewReader("knowledge: [unclosed"), nil, nil)
	assert.Error(t, err)
}

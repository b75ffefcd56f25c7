package instruction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentHeadingRoundTrip(t *testing.T) {
	blob := "#Intro\n\nMix well\n\n#Bake\n\nBake for 10 min"

	steps := Segment(blob, true)
	require.Len(t, steps, 2)

	assert.Equal(t, "Intro", steps[0].Name)
	assert.Equal(t, "Mix well", steps[0].Instruction)
	assert.False(t, steps[0].ShowAsHeader)
	assert.Equal(t, 1, steps[0].Order)

	assert.Equal(t, "Bake", steps[1].Name)
	assert.Equal(t, "Bake for 10 min", steps[1].Instruction)
	assert.Equal(t, 2, steps[1].Order)
}

func TestSegmentFlattenedDocument(t *testing.T) {
	// 攤平器輸出的文件格式可直接分割回步驟
	blob := "\n\n#Step 1\n\nChop the onions\n\n#Step 2\n\nFry gently"

	steps := Segment(blob, true)
	require.Len(t, steps, 2)
	assert.Equal(t, "Step 1", steps[0].Name)
	assert.Equal(t, "Chop the onions", steps[0].Instruction)
	assert.Equal(t, "Step 2", steps[1].Name)
	assert.Equal(t, "Fry gently", steps[1].Instruction)
}

func TestSegmentNoHeadings(t *testing.T) {
	steps := Segment("Just mix everything", true)
	require.Len(t, steps, 1)
	assert.Equal(t, "", steps[0].Name)
	assert.Equal(t, "Just mix everything", steps[0].Instruction)
	assert.Equal(t, 1, steps[0].Order)
}

func TestSegmentNoSplit(t *testing.T) {
	blob := "#Intro\n\nMix well"

	steps := Segment(blob, false)
	require.Len(t, steps, 1)
	assert.Equal(t, "", steps[0].Name)
	assert.Equal(t, blob, steps[0].Instruction)
	assert.Equal(t, 1, steps[0].Order)
}

func TestSegmentMarkerWithoutName(t *testing.T) {
	// 記號後沒有名稱內容：用前一個待用名稱產生純標題步驟
	blob := "#Sauce\n\n##\n\nStir continuously"

	steps := Segment(blob, true)
	require.Len(t, steps, 2)

	assert.Equal(t, "Sauce", steps[0].Name)
	assert.Equal(t, "##", steps[0].Instruction)
	assert.True(t, steps[0].ShowAsHeader)
	assert.Equal(t, 1, steps[0].Order)

	// 待用名稱已被清空的記號覆蓋
	assert.Equal(t, "", steps[1].Name)
	assert.Equal(t, "Stir continuously", steps[1].Instruction)
	assert.False(t, steps[1].ShowAsHeader)
}

func TestSegmentNestedHeading(t *testing.T) {
	blob := "##Filling\n\nSpread evenly"

	steps := Segment(blob, true)
	require.Len(t, steps, 1)
	assert.Equal(t, "Filling", steps[0].Name)
	assert.Equal(t, "Spread evenly", steps[0].Instruction)
}

func TestSegmentEmptyBlob(t *testing.T) {
	assert.Nil(t, Segment("", true))
	assert.Nil(t, Segment("   \n\n  ", true))
	assert.Nil(t, Segment("", false))
}

package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	aviationInstruction = "あなたは航空業界の専門家です。需要予測（季節性・路線特性）、収益管理（運賃クラス・座席販売最適化）、" +
		"運航計画（機材繰り・クルースケジュール）、旅客体験（NPS/CS）、アライアンス/コードシェア、空港発着枠、" +
		"付帯収益（手荷物・座席指定・ラウンジ）を踏まえ、ユーザーの課題に対し、" +
		"1) 背景・論点, 2) 実務的な施策（3案以内）, 3) KPI/次アクション を日本語で簡潔に提案してください。"

	railInstruction = "あなたは鉄道業界の専門家です。需要の時間帯・線区別特性、運賃体系、列車運行（ダイヤ/折返し/運用）、" +
		"保守計画（車両/設備）、安全・遅延要因、駅商業/広告/IC連携、沿線開発・不動産収益を踏まえて、" +
		"ユーザーの課題に対し、1) 背景・制約, 2) 実行可能な施策（3案以内）, 3) KPI/ステークホルダー整理 を提示してください。"

	hotelInstruction = "あなたはホテル業界の専門家です。ADR/RevPAR/稼働率、シーズナリティとイベント需要、OTA/直販チャネル、" +
		"客室タイプ構成、清掃・人員シフト、F&B/宴会/付帯収益、レビュー・NPS改善を考慮し、" +
		"ユーザーの課題に対し、1) 需要/供給の見立て, 2) 料金/在庫/販路最適化（3案以内）, 3) 運営KPI/次アクション を出してください。"

	automotiveInstruction = "あなたは自動車業界の専門家です。製品企画（EV/HEV/ICE/商用）、サプライチェーン（調達/在庫）、" +
		"販売チャネル（ディーラー/オンライン）、アフターサービス、コネクテッド/ソフトウェア、" +
		"規制・安全基準・補助金、市場別戦略を踏まえ、ユーザーの課題に対して、" +
		"1) 前提と仮説, 2) 実行施策（3案以内）, 3) 成功指標/リスクと緩和策 を日本語で簡潔に提案してください。"
)

func TestBuiltinLookup(t *testing.T) {
	c := Builtin()

	tests := []struct {
		label string
		want  string
	}{
		{label: "航空業界の専門家", want: aviationInstruction},
		{label: "鉄道業界の専門家", want: railInstruction},
		{label: "ホテル業界の専門家", want: hotelInstruction},
		{label: "自動車業界の専門家", want: automotiveInstruction},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Lookup(tt.label))
		})
	}
}

func TestLookupFallsBackToDefault(t *testing.T) {
	c := Builtin()

	for _, label := range []string{"unknown-persona", "", "aviation", " 航空業界の専門家"} {
		assert.Equal(t, aviationInstruction, c.Lookup(label), "label %q", label)
	}
}

func TestBuiltinOrder(t *testing.T) {
	c := Builtin()

	assert.Equal(t, []string{
		"航空業界の専門家",
		"鉄道業界の専門家",
		"ホテル業界の専門家",
		"自動車業界の専門家",
	}, c.Labels())
	assert.Equal(t, "aviation", c.Default().Key)
	assert.Equal(t, 4, c.Len())
}

func TestFind(t *testing.T) {
	c := Builtin()

	p, ok := c.Find("hotel")
	require.True(t, ok)
	assert.Equal(t, "ホテル業界の専門家", p.Label)

	p, ok = c.Find("鉄道業界の専門家")
	require.True(t, ok)
	assert.Equal(t, "rail", p.Key)

	_, ok = c.Find("space")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	c := Builtin()

	all := c.All()
	all[0].Instruction = "changed"

	assert.Equal(t, aviationInstruction, c.Lookup("航空業界の専門家"))
}

func TestParseRejectsInvalidCatalogs(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "empty list", yaml: "[]"},
		{name: "empty document", yaml: ""},
		{name: "missing label", yaml: "- instruction: x"},
		{name: "missing instruction", yaml: "- label: a"},
		{
			name: "duplicate label",
			yaml: "- label: a\n  instruction: x\n- label: a\n  instruction: y",
		},
		{
			name: "duplicate key",
			yaml: "- key: k\n  label: a\n  instruction: x\n- key: k\n  label: b\n  instruction: y",
		},
		{name: "not a list", yaml: "label: a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestParseCustomCatalog(t *testing.T) {
	c, err := Parse([]byte("- label: first\n  instruction: one\n- label: second\n  instruction: two"))
	require.NoError(t, err)

	assert.Equal(t, "two", c.Lookup("second"))
	assert.Equal(t, "one", c.Lookup("third"))
}

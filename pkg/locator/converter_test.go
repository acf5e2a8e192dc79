package locator

import (
	"errors"
	"reflect"
	"testing"
)

func TestDetect(t *testing.T) {
	conv := New()
	tests := []struct {
		name     string
		input    any
		expected *Selector
	}{
		{
			name:     "selector pointer passes through",
			input:    NewSelector().Text("OK"),
			expected: NewSelector().Text("OK"),
		},
		{
			name:     "selector value passes through",
			input:    *NewSelector().Clickable(true),
			expected: NewSelector().Clickable(true),
		},
		{
			name:     "strategy pair",
			input:    StrategyPair{Strategy: StrategyXPath, Value: `//*[@text='OK']`},
			expected: NewSelector().Text("OK"),
		},
		{
			name:     "typed map",
			input:    map[string]any{"text": "OK", "clickable": true},
			expected: NewSelector().Text("OK").Clickable(true),
		},
		{
			name:     "string map",
			input:    map[string]string{"text": "OK", "clickable": "true"},
			expected: NewSelector().Text("OK").Clickable(true),
		},
		{
			name:     "xpath string",
			input:    `//android.widget.Button[@text='OK']`,
			expected: NewSelector().ClassName("android.widget.Button").Text("OK"),
		},
		{
			name:     "uiselector string",
			input:    `new UiSelector().text("OK");`,
			expected: NewSelector().Text("OK"),
		},
		{
			name:     "leading whitespace is tolerated",
			input:    "  \tnew UiSelector().text(\"OK\");",
			expected: NewSelector().Text("OK"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Detect(tt.input)
			if err != nil {
				t.Fatalf("detect failed: %v", err)
			}
			if !got.Equal(tt.expected) {
				t.Errorf("got %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestDetectXPathStringCriteriaOrder(t *testing.T) {
	// predicates keep their written order; the detect test above relies on
	// class-first rendering, this one pins the reverse order too
	conv := New()
	got, err := conv.Detect(`//*[@text='OK'][@class='android.widget.Button']`)
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	expected := &Selector{Criteria: []Criterion{
		{Attribute: AttrText, Value: "OK"},
		{Attribute: AttrClassName, Value: "android.widget.Button"},
	}}
	if !got.Equal(expected) {
		t.Errorf("got %+v, want %+v", got, expected)
	}
}

func TestDetectDoesNotMutateInput(t *testing.T) {
	conv := New()
	original := NewSelector().Text("OK")
	detected, err := conv.Detect(original)
	if err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	detected.Criteria[0].Value = "changed"
	if original.Criteria[0].Value != "OK" {
		t.Error("detect returned a selector sharing state with the input")
	}
}

func TestDetectUnrecognized(t *testing.T) {
	conv := New()
	inputs := []any{
		nil,
		42,
		3.14,
		[]string{"x"},
		"plain text locator",
		StrategyPair{Strategy: "-android uiautomator", Value: "new UiSelector();"},
	}

	for _, input := range inputs {
		_, err := conv.Detect(input)
		var unrecognized *UnrecognizedLocatorError
		if !errors.As(err, &unrecognized) {
			t.Errorf("Detect(%#v): got %v, want UnrecognizedLocatorError", input, err)
		}
	}
}

func TestConvertScenarios(t *testing.T) {
	conv := New()
	tests := []struct {
		name     string
		input    any
		target   Format
		expected any
	}{
		{
			name:     "uiselector to xpath",
			input:    `new UiSelector().text("Settings").clickable(true);`,
			target:   FormatXPath,
			expected: `//*[@text='Settings'][@clickable='true']`,
		},
		{
			name:     "dict to uiselector",
			input:    map[string]any{"class": "android.widget.Button", "instance": "2"},
			target:   FormatUiSelector,
			expected: `new UiSelector().className("android.widget.Button").instance(2);`,
		},
		{
			name:     "xpath to dict",
			input:    `//android.widget.EditText[@focused='true']`,
			target:   FormatDict,
			expected: map[string]any{"class": "android.widget.EditText", "focused": true},
		},
		{
			name:     "hierarchical uiselector to xpath",
			input:    `new UiSelector().scrollable(true).childSelector(new UiSelector().text("History"));`,
			target:   FormatXPath,
			expected: `//*[@scrollable='true']/*[@text='History']`,
		},
		{
			name:     "null sentinel dict to xpath",
			input:    map[string]any{"resource-id": "null"},
			target:   FormatXPath,
			expected: `//*[@resource-id]`,
		},
		{
			name:     "hint is excluded on the way through",
			input:    map[string]any{"class": "android.widget.EditText", "hint": "Telephone"},
			target:   FormatXPath,
			expected: `//android.widget.EditText`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := conv.Convert(tt.input, tt.target)
			if err != nil {
				t.Fatalf("convert failed: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestConvertUnknownTarget(t *testing.T) {
	conv := New()
	if _, err := conv.Convert(`//*`, Format("yaml")); err == nil {
		t.Error("expected error for unknown target format")
	}
}

func TestStrictMode(t *testing.T) {
	strict := New(WithStrict())
	lenient := New()

	t.Run("sentinel to uiselector", func(t *testing.T) {
		input := map[string]any{"resource-id": "null", "text": "ok"}

		if _, err := strict.ToUiSelector(input); err == nil {
			t.Error("strict converter should reject the existence sentinel")
		}

		got, err := lenient.ToUiSelector(input)
		if err != nil {
			t.Fatalf("lenient conversion failed: %v", err)
		}
		if got != `new UiSelector().text("ok");` {
			t.Errorf("got %s", got)
		}
	})

	t.Run("hierarchy to dict", func(t *testing.T) {
		input := `new UiSelector().scrollable(true).childSelector(new UiSelector().text("History"));`

		if _, err := strict.ToDict(input); err == nil {
			t.Error("strict converter should reject hierarchy for the dict target")
		}

		got, err := lenient.ToDict(input)
		if err != nil {
			t.Fatalf("lenient conversion failed: %v", err)
		}
		want := map[string]any{"scrollable": true}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("xpath target is always exact", func(t *testing.T) {
		got, err := strict.ToXPath(map[string]any{"resource-id": "null"})
		if err != nil {
			t.Fatalf("conversion failed: %v", err)
		}
		if got != `//*[@resource-id]` {
			t.Errorf("got %s", got)
		}
	})
}

func TestToXPathPair(t *testing.T) {
	conv := New()
	pair, err := conv.ToXPathPair(`new UiSelector().text("Settings");`)
	if err != nil {
		t.Fatalf("conversion failed: %v", err)
	}
	want := StrategyPair{Strategy: StrategyXPath, Value: `//*[@text='Settings']`}
	if pair != want {
		t.Errorf("got %+v, want %+v", pair, want)
	}
}

func TestDirectPairConversions(t *testing.T) {
	conv := New()

	got, err := conv.UiSelectorToXPath(`new UiSelector().className("a.B").enabled(true);`)
	if err != nil {
		t.Fatalf("UiSelectorToXPath failed: %v", err)
	}
	if got != `//a.B[@enabled='true']` {
		t.Errorf("UiSelectorToXPath got %s", got)
	}

	d, err := conv.XPathToDict(`//*[@text='OK']`)
	if err != nil {
		t.Fatalf("XPathToDict failed: %v", err)
	}
	if !reflect.DeepEqual(d, map[string]any{"text": "OK"}) {
		t.Errorf("XPathToDict got %v", d)
	}

	ui, err := conv.DictToUiSelector(map[string]any{"textContains": "Опл"})
	if err != nil {
		t.Fatalf("DictToUiSelector failed: %v", err)
	}
	if ui != `new UiSelector().textContains("Опл");` {
		t.Errorf("DictToUiSelector got %s", ui)
	}

	x, err := conv.DictToXPath(map[string]any{"descriptionStartsWith": "Ба"})
	if err != nil {
		t.Fatalf("DictToXPath failed: %v", err)
	}
	if x != `//*[starts-with(@content-desc,'Ба')]` {
		t.Errorf("DictToXPath got %s", x)
	}

	d2, err := conv.UiSelectorToDict(`new UiSelector().index(1);`)
	if err != nil {
		t.Fatalf("UiSelectorToDict failed: %v", err)
	}
	if !reflect.DeepEqual(d2, map[string]any{"index": "1"}) {
		t.Errorf("UiSelectorToDict got %v", d2)
	}

	ui2, err := conv.XPathToUiSelector(`//android.widget.CheckBox[3]`)
	if err != nil {
		t.Fatalf("XPathToUiSelector failed: %v", err)
	}
	if ui2 != `new UiSelector().className("android.widget.CheckBox").instance(2);` {
		t.Errorf("XPathToUiSelector got %s", ui2)
	}
}

func TestValidate(t *testing.T) {
	conv := New()

	valid := []any{
		`//*`,
		`new UiSelector();`,
		map[string]any{"text": "OK"},
		NewSelector(),
	}
	for _, input := range valid {
		if err := conv.Validate(input); err != nil {
			t.Errorf("Validate(%#v) = %v, want nil", input, err)
		}
	}

	invalid := []any{
		"",
		"   ",
		map[string]any{},
		map[string]string{},
		"not-a-locator",
		7,
	}
	for _, input := range invalid {
		if err := conv.Validate(input); err == nil {
			t.Errorf("Validate(%#v) = nil, want error", input)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Format
	}{
		{"dict", FormatDict},
		{"XPath", FormatXPath},
		{"UISELECTOR", FormatUiSelector},
	} {
		got, err := ParseFormat(tt.in)
		if err != nil {
			t.Fatalf("ParseFormat(%q) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if _, err := ParseFormat("css"); err == nil {
		t.Error("expected error for unknown format name")
	}
}

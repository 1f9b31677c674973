package form

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type packageForm struct {
	Name          string `json:"name" validate:"required" msg:"required=Name is required"`
	DownloadSpeed Number `json:"downloadSpeed" validate:"required,min=0" msg:"required=Download speed is required;min=Download speed must be positive"`
	BurstDownload Number `json:"burstDownload,omitzero" validate:"omitempty,min=0" label:"Burst download"`
	ServiceType   string `json:"serviceType" validate:"required,oneof=PPPOE HOTSPOT STATIC"`
	Password      Secret `json:"password,omitzero" validate:"omitempty,min=6" label:"Password"`
}

func TestNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		valid   bool
		want    float64
		wantErr bool
	}{
		{"number", `12`, true, 12, false},
		{"numeric text", `"12.5"`, true, 12.5, false},
		{"zero", `0`, true, 0, false},
		{"zero text", `"0"`, true, 0, false},
		{"empty text", `""`, false, 0, false},
		{"null", `null`, false, 0, false},
		{"garbage", `"abc"`, false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n Number
			err := json.Unmarshal([]byte(tt.in), &n)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.valid, n.Valid)
			assert.Equal(t, tt.want, n.Float64.Float64)
		})
	}
}

func TestOptionalFieldsOmitted(t *testing.T) {
	f := packageForm{
		Name:          "Basic 5G",
		DownloadSpeed: NumberFrom(10),
		ServiceType:   "PPPOE",
	}
	raw, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Basic 5G","downloadSpeed":10,"serviceType":"PPPOE"}`, string(raw))

	f.BurstDownload = NumberFrom(0)
	f.Password = SecretFrom("   ")
	raw, err = json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Basic 5G","downloadSpeed":10,"burstDownload":0,"serviceType":"PPPOE"}`, string(raw))
}

func TestSecretUnmarshal(t *testing.T) {
	var f packageForm
	require.NoError(t, json.Unmarshal([]byte(`{"password":""}`), &f))
	assert.False(t, f.Password.Valid)

	require.NoError(t, json.Unmarshal([]byte(`{"password":"s3cret!"}`), &f))
	assert.Equal(t, "s3cret!", f.Password.String.String)
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name string
		in   packageForm
		want map[string]string
	}{
		{
			name: "valid",
			in:   packageForm{Name: "Basic 5G", DownloadSpeed: NumberFrom(10), ServiceType: "PPPOE"},
		},
		{
			name: "zero speed is provided",
			in:   packageForm{Name: "Free", DownloadSpeed: NumberFrom(0), ServiceType: "HOTSPOT"},
		},
		{
			name: "negative speed",
			in:   packageForm{Name: "Basic", DownloadSpeed: NumberFrom(-1), ServiceType: "PPPOE"},
			want: map[string]string{"downloadSpeed": "Download speed must be positive"},
		},
		{
			name: "missing everything",
			in:   packageForm{},
			want: map[string]string{
				"name":          "Name is required",
				"downloadSpeed": "Download speed is required",
				"serviceType":   "serviceType is required",
			},
		},
		{
			name: "bad optional values",
			in: packageForm{
				Name: "Basic", DownloadSpeed: NumberFrom(1), ServiceType: "FIBER",
				BurstDownload: NumberFrom(-5), Password: SecretFrom("abc"),
			},
			want: map[string]string{
				"serviceType":   "serviceType must be one of PPPOE, HOTSPOT, STATIC",
				"burstDownload": "Burst download must be at least 0",
				"password":      "Password must be at least 6",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.Validate(tt.in)
			if tt.want == nil {
				assert.Nil(t, errs)
				return
			}
			require.NotNil(t, errs)
			assert.Equal(t, tt.want, errs.Fields())
			assert.Len(t, errs.Errors(), len(tt.want), "one error per field")
		})
	}
}

func TestReduce(t *testing.T) {
	type customer struct{ Name string }
	type values struct{ Name, Password string }

	derived := 0
	derive := func(c customer) values {
		derived++
		return values{Name: c.Name}
	}

	st := Loading[customer, values]()
	st = Reduce(st, Event[customer]{Kind: EventFetched, Data: customer{Name: "Ann"}}, derive)
	assert.Equal(t, StatusLoaded, st.Status)
	assert.Equal(t, values{Name: "Ann"}, st.Values)

	st.Values.Name = "Ann B"
	st = Reduce(st, Event[customer]{Kind: EventFetched, Data: customer{Name: "Ann"}}, derive)
	assert.Equal(t, "Ann B", st.Values.Name, "refetch must not overwrite edits")
	assert.Equal(t, 1, derived)

	st = Reduce(st, Event[customer]{Kind: EventReload}, derive)
	assert.Equal(t, StatusLoading, st.Status)

	st = Reduce(st, Event[customer]{Kind: EventFailed, Err: errors.New("not found")}, derive)
	assert.Equal(t, StatusError, st.Status)
	assert.Equal(t, "not found", st.Reason)

	st = Reduce(st, Event[customer]{Kind: EventFetched, Data: customer{Name: "late"}}, derive)
	assert.Equal(t, StatusError, st.Status)
	assert.Equal(t, 1, derived)
}

func TestView(t *testing.T) {
	st := Loading[string, string]()
	assert.True(t, NewView(st, nil, false).SubmitDisabled)

	st = Reduce(st, Event[string]{Kind: EventFetched, Data: "x"}, func(s string) string { return s })
	assert.False(t, NewView(st, nil, false).SubmitDisabled)
	assert.True(t, NewView(st, nil, true).SubmitDisabled)

	errs := NewValidator().Validate(packageForm{})
	view := NewView(st, errs, false)
	assert.True(t, view.SubmitDisabled)
	assert.Equal(t, "Name is required", view.Errors["name"])

	pristine := NewPristineView(st, errs)
	assert.True(t, pristine.SubmitDisabled)
	assert.Empty(t, pristine.Errors)
}

func TestGuard(t *testing.T) {
	g := NewGuard()
	require.True(t, g.Begin("u1:create-package"))
	assert.False(t, g.Begin("u1:create-package"))
	assert.True(t, g.Begin("u2:create-package"))

	g.End("u1:create-package")
	assert.True(t, g.Begin("u1:create-package"), "sequential submissions are allowed")
}

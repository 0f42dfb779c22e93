package money

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func TestMoney_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		v    Money
		want []byte
	}{
		{
			name: "1 positive",
			v:    250000,
			want: []byte("2500"),
		},
		{
			name: "2 positive",
			v:    999,
			want: []byte("9.99"),
		},
		{
			name: "3 positive",
			v:    0,
			want: []byte("0"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := tt.v.MarshalJSON()

			require.Equal(t, got, tt.want)
		})
	}
}

func TestMoney_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    Money
		wantErr bool
	}{
		{
			name: "1 positive",
			data: []byte("120"),
			want: Money(12000),
		},
		{
			name: "2 positive",
			data: []byte("75.30"),
			want: Money(7530),
		},
		{
			name: "3 positive",
			data: []byte("0"),
			want: Money(0),
		},
		{
			name:    "4 negative value",
			data:    []byte("-10"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Money
			err := m.UnmarshalJSON(tt.data)

			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, m, tt.want)
		})
	}
}

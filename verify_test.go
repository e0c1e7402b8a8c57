// SPDX-License-Identifier: GPL-3.0-or-later

package dnswire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestQuery(name string, qtype Type) *Message {
	return &Message{
		ID:               1234,
		RecursionDesired: true,
		Questions:        []Question{{Name: name, Type: qtype, Class: ClassINET}},
	}
}

func newTestReply(query *Message) *Message {
	return &Message{
		ID:        query.ID,
		Response:  true,
		Questions: append([]Question{}, query.Questions...),
	}
}

func TestValidateResponseForQuery(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(query, resp *Message)
		expected error
	}{
		{
			name: "ValidResponse",
			modify: func(query, resp *Message) {
				// No modification needed, valid response.
			},
			expected: nil,
		},

		{
			name: "InvalidResponseID",
			modify: func(query, resp *Message) {
				resp.ID = query.ID + 1
			},
			expected: ErrInvalidResponse,
		},

		{
			name: "InvalidResponseNotAResponse",
			modify: func(query, resp *Message) {
				resp.Response = false
			},
			expected: ErrInvalidResponse,
		},

		{
			name: "InvalidQueryNoQuestion",
			modify: func(query, resp *Message) {
				query.Questions = nil
			},
			expected: ErrInvalidQuery,
		},

		{
			name: "InvalidResponseNoQuestion",
			modify: func(query, resp *Message) {
				resp.Questions = nil
			},
			expected: ErrInvalidResponse,
		},

		{
			name: "InvalidResponseQuestionName",
			modify: func(query, resp *Message) {
				resp.Questions[0].Name = "invalid.com."
			},
			expected: ErrInvalidResponse,
		},

		{
			name: "InvalidResponseQuestionClass",
			modify: func(query, resp *Message) {
				resp.Questions[0].Class = Class(3)
			},
			expected: ErrInvalidResponse,
		},

		{
			name: "InvalidResponseQuestionType",
			modify: func(query, resp *Message) {
				resp.Questions[0].Type = TypeAAAA
			},
			expected: ErrInvalidResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := newTestQuery("example.com.", TypeA)
			resp := newTestReply(query)

			tt.modify(query, resp)

			q0, err := ValidateResponseForQuery(query, resp)
			if tt.expected != nil {
				require.ErrorIs(t, err, tt.expected)
				return
			}
			require.NoError(t, err)
			require.Equal(t, query.Questions[0], q0)
		})
	}
}

func TestEqualName(t *testing.T) {
	tests := []struct {
		name     string
		x        string
		y        string
		expected bool
	}{
		{"EqualNames", "example.com.", "example.com.", true},
		{"EqualNamesDifferentCase", "Example.COM.", "exaMple.com.", true},
		{"MissingTrailingDot", "example.com", "example.com.", true},
		{"DifferentNames", "example.com.", "example.org.", false},
		{"DifferentLengths", "example.com.", "example.co.uk.", false},
		{"OnlyPrefixMatch", "example.co.", "example.co.uk.", false},
		{"EmptyStrings", "", "", true},
		{"OneEmptyString", "example.com.", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := equalName(tt.x, tt.y)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestResponseErrorFromRCODEMapping(t *testing.T) {
	tests := []struct {
		name     string
		rcode    RCode
		expected error
	}{
		{"NameError", RCodeNXDomain, ErrNoName},
		{"ServerFailure", RCodeServFail, ErrServerTemporarilyMisbehaving},
		{"LameReferral", RCodeNoError, ErrNoData},
		{"Success", RCodeNoError, nil},
		{"Refused", RCodeRefused, ErrServerMisbehaving},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := &Message{Response: true, RCode: tt.rcode}

			switch tt.name {
			case "LameReferral":
				resp.Authoritative = false
				resp.RecursionAvailable = false
				resp.Answers = nil

			case "Success":
				resp.Authoritative = true
				resp.RecursionAvailable = true
				resp.Answers = []Record{
					NewA("example.com.", 300, IPv4{127, 0, 0, 1}),
				}
			}

			err := ResponseErrorFromRCODE(resp)
			if tt.expected != nil {
				require.ErrorIs(t, err, tt.expected)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestResponseExtractValidAnswers(t *testing.T) {
	tests := []struct {
		name     string
		query    *Message
		answers  []Record
		expected int
		err      error
	}{
		{
			name:  "ValidAnswerWithoutCNAME",
			query: newTestQuery("example.com.", TypeA),
			answers: []Record{
				NewA("example.com.", 300, IPv4{127, 0, 0, 1}),
			},
			expected: 1,
		},

		{
			name:  "ValidAnswerWithCNAME",
			query: newTestQuery("example.co.uk.", TypeA),
			answers: []Record{
				NewCNAME("example.co.uk.", 300, "example.com."),
				NewCNAME("example.com.", 300, "example.org."),
				NewA("example.org.", 300, IPv4{127, 0, 0, 1}),
			},
			expected: 3,
		},

		{
			name:  "ValidAnswerWithCNAMEMixedCase",
			query: newTestQuery("Example.CO.UK.", TypeA),
			answers: []Record{
				NewCNAME("eXample.co.uk.", 300, "ExamPle.com."),
				NewCNAME("example.COM.", 300, "Example.ORG."),
				NewA("eXaMpLe.org.", 300, IPv4{127, 0, 0, 1}),
			},
			expected: 3,
		},

		{
			name:     "NoAnswers",
			query:    newTestQuery("example.com.", TypeA),
			answers:  nil,
			expected: 0,
			err:      ErrNoData,
		},

		{
			name:  "MismatchedName",
			query: newTestQuery("example.com.", TypeA),
			answers: []Record{
				NewA("example.org.", 300, IPv4{127, 0, 0, 1}),
			},
			expected: 0,
			err:      ErrNoData,
		},

		{
			name:  "MismatchedClass",
			query: newTestQuery("example.com.", TypeA),
			answers: func() []Record {
				rec := NewA("example.com.", 300, IPv4{127, 0, 0, 1})
				rec.Class = Class(3)
				return []Record{rec}
			}(),
			expected: 0,
			err:      ErrNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := newTestReply(tt.query)
			resp.Answers = tt.answers

			answers, err := ResponseExtractValidAnswers(tt.query.Questions[0], resp)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				require.Len(t, answers, 0)
				return
			}
			require.NoError(t, err)
			require.Len(t, answers, tt.expected)
		})
	}
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name     string
		makeResp func(query *Message) *Message
		expected error
	}{
		{
			name: "ValidResponse",
			makeResp: func(query *Message) *Message {
				resp := newTestReply(query)
				resp.Answers = []Record{
					NewA("example.com.", 300, IPv4{127, 0, 0, 1}),
				}
				return resp
			},
			expected: nil,
		},

		{
			name: "InvalidResponseID",
			makeResp: func(query *Message) *Message {
				resp := newTestReply(query)
				resp.ID++
				return resp
			},
			expected: ErrInvalidResponse,
		},

		{
			name: "ServerMisbehaving",
			makeResp: func(query *Message) *Message {
				resp := newTestReply(query)
				resp.RCode = RCodeRefused
				return resp
			},
			expected: ErrServerMisbehaving,
		},

		{
			name: "NoData",
			makeResp: func(query *Message) *Message {
				resp := newTestReply(query)
				resp.Authoritative = true
				resp.RecursionAvailable = true
				resp.Answers = nil
				return resp
			},
			expected: ErrNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := newTestQuery("example.com.", TypeA)
			resp := tt.makeResp(query)

			_, err := ParseResponse(query, resp)
			if tt.expected != nil {
				require.ErrorIs(t, err, tt.expected)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestResponseRecordsA(t *testing.T) {
	resp := &Response{
		ValidRecords: []Record{
			NewA("example.com.", 300, IPv4{127, 0, 0, 1}),
			NewA("example.com.", 300, IPv4{8, 8, 8, 8}),
			NewAAAA("example.com.", 300,
				IPv6{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}),
		},
	}

	addrs, err := resp.RecordsA()
	require.NoError(t, err)
	require.Equal(t, []string{"127.0.0.1", "8.8.8.8"}, addrs)
}

func TestResponseRecordsANoData(t *testing.T) {
	resp := &Response{ValidRecords: []Record{}}
	addrs, err := resp.RecordsA()
	require.ErrorIs(t, err, ErrNoData)
	require.Nil(t, addrs)
}

func TestResponseRecordsAAAA(t *testing.T) {
	resp := &Response{
		ValidRecords: []Record{
			NewAAAA("example.com.", 300,
				IPv6{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}),
			NewA("example.com.", 300, IPv4{127, 0, 0, 1}),
		},
	}

	addrs, err := resp.RecordsAAAA()
	require.NoError(t, err)
	require.Equal(t, []string{"2001:db8::1"}, addrs)
}

func TestResponseRecordsAAAANoData(t *testing.T) {
	resp := &Response{ValidRecords: []Record{}}
	addrs, err := resp.RecordsAAAA()
	require.ErrorIs(t, err, ErrNoData)
	require.Nil(t, addrs)
}

func TestResponseRecordFirstCNAME(t *testing.T) {
	resp := &Response{
		ValidRecords: []Record{
			NewCNAME("www.example.com.", 300, "example.com."),
			NewA("example.com.", 300, IPv4{127, 0, 0, 1}),
		},
	}

	target, err := resp.RecordFirstCNAME()
	require.NoError(t, err)
	require.Equal(t, "example.com.", target)
}

func TestResponseRecordFirstCNAMENoData(t *testing.T) {
	resp := &Response{ValidRecords: []Record{}}
	target, err := resp.RecordFirstCNAME()
	require.ErrorIs(t, err, ErrNoData)
	require.Equal(t, "", target)
}

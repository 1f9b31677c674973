package graphql

const stationFields = `
fragment ISPStationFields on ISPStation {
  id
  name
  location
  type
  ipAddress
  status
  description
  createdAt
  updatedAt
}`

const listQuery = `
query GetISPStations($organizationId: ID!, $page: Int, $pageSize: Int, $sortBy: String, $sortDirection: String, $search: String) {
  ispStations(organizationId: $organizationId, page: $page, pageSize: $pageSize, sortBy: $sortBy, sortDirection: $sortDirection, search: $search) {
    items { ...ISPStationFields }
    totalCount
  }
}` + stationFields

const detailQuery = `
query GetISPStation($organizationId: ID!, $id: ID!) {
  ispStation(organizationId: $organizationId, id: $id) { ...ISPStationFields }
}` + stationFields

const createMutation = `
mutation CreateISPStation($input: CreateISPStationInput!) {
  createISPStation(input: $input) { ...ISPStationFields }
}` + stationFields

const updateMutation = `
mutation UpdateISPStation($id: ID!, $input: UpdateISPStationInput!) {
  updateISPStation(id: $id, input: $input) { ...ISPStationFields }
}` + stationFields

const deleteMutation = `
mutation DeleteISPStation($organizationId: ID!, $id: ID!) {
  deleteISPStation(organizationId: $organizationId, id: $id)
}`

package graphql

const organizationFields = `
fragment OrganizationFields on Organization {
  id
  name
  email
  phone
  address
  description
  createdAt
  members {
    id
    userId
    roleId
    status
    createdAt
    user { id name email }
    role { id name }
  }
  roles { ...RoleFields }
}` + roleFields

const roleFields = `
fragment RoleFields on Role {
  id
  name
  description
  permissions
}`

const detailQuery = `
query GetOrganization($id: ID!) {
  organization(id: $id) { ...OrganizationFields }
}` + organizationFields

const updateMutation = `
mutation UpdateOrganization($id: ID!, $input: UpdateOrganizationInput!) {
  updateOrganization(id: $id, input: $input) { ...OrganizationFields }
}` + organizationFields

const inviteMutation = `
mutation InviteOrganizationMember($input: InviteMemberInput!) {
  inviteOrganizationMember(input: $input) { id email roleId status expiresAt }
}`

const updateMemberRoleMutation = `
mutation UpdateOrganizationMemberRole($organizationId: ID!, $memberId: ID!, $roleId: ID!) {
  updateOrganizationMemberRole(organizationId: $organizationId, memberId: $memberId, roleId: $roleId) {
    id userId roleId status createdAt
    user { id name email }
    role { id name }
  }
}`

const removeMemberMutation = `
mutation RemoveOrganizationMember($organizationId: ID!, $memberId: ID!) {
  removeOrganizationMember(organizationId: $organizationId, memberId: $memberId)
}`

const createRoleMutation = `
mutation CreateRole($input: CreateRoleInput!) {
  createRole(input: $input) { ...RoleFields }
}` + roleFields

const updateRoleMutation = `
mutation UpdateRole($id: ID!, $input: UpdateRoleInput!) {
  updateRole(id: $id, input: $input) { ...RoleFields }
}` + roleFields

const deleteRoleMutation = `
mutation DeleteRole($organizationId: ID!, $id: ID!) {
  deleteRole(organizationId: $organizationId, id: $id)
}`
